package announcements

import "errors"

var (
	// ErrInvalidType возвращается при недопустимом типе объявления
	ErrInvalidType = errors.New("invalid announcement type")

	// ErrEmptyMessage возвращается при попытке активировать объявление без текста
	ErrEmptyMessage = errors.New("announcement message is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

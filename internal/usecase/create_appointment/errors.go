package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidPhone возвращается, когда телефон содержит меньше 10 цифр
	ErrInvalidPhone = errors.New("create_appointment: invalid phone number")

	// ErrServiceNotFound возвращается, когда код услуги отсутствует в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrClosedDay возвращается при попытке записи на выходной день
	ErrClosedDay = errors.New("create_appointment: barbershop is closed on this day")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот сегодняшнего дня уже недоступен по времени
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другой записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

package create_appointment

import (
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон в любом виде; нормализуется и форматируется
	ServiceID     domain.ServiceID // Код услуги из каталога
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string           // ID созданной записи
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон в формате отображения
	ServiceID     domain.ServiceID // Код услуги
	ServiceName   string           // Название услуги (денормализация из каталога)
	ServicePrice  int              // Цена услуги
	Date          time.Time        // Дата записи
	StartTime     types.TimeString // Время начала
	Status        string           // Статус (всегда confirmed при создании)
	CreatedAt     time.Time        // Время создания
}

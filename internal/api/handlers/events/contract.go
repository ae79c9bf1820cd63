package events

import (
	busevents "github.com/cortefacil/booking-service/internal/events"
)

type EventSource interface {
	Subscribe(topics ...busevents.Topic) (<-chan busevents.Topic, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

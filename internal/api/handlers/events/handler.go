package events

import (
	"fmt"
	"net/http"
	"time"
)

// keepAliveInterval период отправки комментария, удерживающего соединение
// открытым через прокси и балансировщики
const keepAliveInterval = 30 * time.Second

type Handler struct {
	source EventSource
	logger Logger
}

func NewHandler(source EventSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/events
// Поток Server-Sent Events: на каждое изменение данных отправляется
// событие с именем темы. Тело события не несёт данных, клиент
// перечитывает изменившуюся область через обычные запросы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Warn("GET /events - Streaming unsupported by response writer")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Клиент сразу получает подтверждение подключения
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ch, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	h.logger.Info("GET /events - Client connected: remote=%s", r.RemoteAddr)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events - Client disconnected: remote=%s", r.RemoteAddr)
			return

		case topic, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: {}\n\n", topic)
			flusher.Flush()

		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}

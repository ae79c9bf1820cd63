package events

import "sync"

// Topic типизированная тема события изменения данных
// Подписчики перечитывают только ту область, которая изменилась
type Topic string

const (
	// TopicAppointmentsChanged создана запись или изменился её статус
	TopicAppointmentsChanged Topic = "appointments_changed"

	// TopicAnnouncementsChanged изменилось состояние объявлений
	TopicAnnouncementsChanged Topic = "announcements_changed"
)

// Publisher сторона публикации; её видят сервисы и use cases
type Publisher interface {
	Publish(topic Topic)
}

type subscriber struct {
	topics map[Topic]struct{} // пустая map = все темы
	ch     chan Topic
}

func (s *subscriber) wants(topic Topic) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// Bus внутрипроцессная шина событий изменения данных
// Publish не блокируется: канал подписчика буферизован, при переполнении
// событие отбрасывается - подписчик всё равно перечитывает состояние целиком
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
}

// NewBus создает пустую шину
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe подписывает на указанные темы (без аргументов - на все)
// Возвращает канал событий и функцию отписки; отписку обязательно вызывать
// на время жизни потребителя, иначе подписчик утекает
func (b *Bus) Subscribe(topics ...Topic) (<-chan Topic, func()) {
	sub := &subscriber{
		topics: make(map[Topic]struct{}, len(topics)),
		ch:     make(chan Topic, 8),
	}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub.ch)
		}
	}

	return sub.ch, unsubscribe
}

// Publish рассылает событие всем заинтересованным подписчикам
func (b *Bus) Publish(topic Topic) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if !sub.wants(topic) {
			continue
		}
		select {
		case sub.ch <- topic:
		default:
		}
	}
}

// SubscriberCount возвращает число активных подписчиков
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

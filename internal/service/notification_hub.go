package service

import (
	"sync"
	"time"

	"studyquest_backend/internal/model"
	"studyquest_backend/pkg/logger"

	"go.uber.org/zap"
)

const defaultSubscriberBuffer = 32

// Subscription 一个订阅者，事件通过带缓冲的 channel 投递
type Subscription struct {
	hub    *NotificationHub
	events chan model.Event
	once   sync.Once
}

func (s *Subscription) Events() <-chan model.Event {
	return s.events
}

// Close 取消订阅，可重复调用
func (s *Subscription) Close() {
	s.hub.unsubscribe(s)
}

// NotificationHub 进程内事件广播，慢订阅者直接丢弃事件，发布方不会被阻塞
type NotificationHub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	closed bool
	now    func() time.Time
}

func NewNotificationHub(buffer int) *NotificationHub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &NotificationHub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
		now:    time.Now,
	}
}

func (h *NotificationHub) Subscribe() *Subscription {
	sub := &Subscription{hub: h, events: make(chan model.Event, h.buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		sub.once.Do(func() { close(sub.events) })
		return sub
	}
	h.subs[sub] = struct{}{}
	return sub
}

func (h *NotificationHub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, sub)
	sub.once.Do(func() { close(sub.events) })
}

// Publish 向所有订阅者投递事件
func (h *NotificationHub) Publish(eventType model.EventType, message string, data map[string]any) {
	evt := model.Event{
		Type:    eventType,
		Message: message,
		Data:    data,
		At:      h.now(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.events <- evt:
		default:
			logger.Log.Debug("Notification dropped for slow subscriber", zap.String("type", string(eventType)))
		}
	}
}

func (h *NotificationHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close 关闭所有订阅，之后的 Subscribe 立即得到已关闭的 channel
func (h *NotificationHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		sub.once.Do(func() { close(sub.events) })
		delete(h.subs, sub)
	}
	logger.Log.Info("Notification hub stopped")
}

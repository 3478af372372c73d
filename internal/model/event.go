package model

import "time"

// EventType 推送给前端的事件类型
type EventType string

const (
	EventXPGained      EventType = "xp_gained"
	EventLevelUp       EventType = "level_up"
	EventStageEvolved  EventType = "stage_evolved"
	EventCoinsAwarded  EventType = "coins_awarded"
	EventItemPurchased EventType = "item_purchased"
)

// Event 瞬时通知，不落库
type Event struct {
	Type    EventType      `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	At      time.Time      `json:"at"`
}

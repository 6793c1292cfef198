// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted     Type = "game_started"
	GameEnded       Type = "game_ended"
	GamePaused      Type = "game_paused"
	GameResumed     Type = "game_resumed"
	EnemySpawned    Type = "enemy_spawned"
	EnemyDestroyed  Type = "enemy_destroyed"
	ProjectileFired Type = "projectile_fired"
	PlanetHit       Type = "planet_hit"
	ScoreChanged    Type = "score_changed"
	ReplaySaved     Type = "replay_saved"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// EnemyEvent carries information about enemy spawn and destruction
type EnemyEvent struct {
	BaseEvent
	EnemyKind string
	Points    int
}

// NewEnemyEvent creates a new enemy event
func NewEnemyEvent(eventType Type, source interface{}, enemyKind string, points int) *EnemyEvent {
	return &EnemyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EnemyKind: enemyKind,
		Points:    points,
	}
}

// ProjectileEvent carries information about a weapon launch
type ProjectileEvent struct {
	BaseEvent
	Weapon string
	Speed  float64
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(source interface{}, weapon string, speed float64) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: ProjectileFired,
			Source:    source,
		},
		Weapon: weapon,
		Speed:  speed,
	}
}

// ScoreEvent carries a score change
type ScoreEvent struct {
	BaseEvent
	Score int
	Delta int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(source interface{}, score, delta int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: ScoreChanged,
			Source:    source,
		},
		Score: score,
		Delta: delta,
	}
}

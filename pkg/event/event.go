// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Type represents the type of event
type Type string

// Game event types
const (
	GameStarted     Type = "game_started"
	GameEnded       Type = "game_ended"
	ProjectileFired Type = "projectile_fired"
	HazardDestroyed Type = "hazard_destroyed"
	HazardSplit     Type = "hazard_split"
	CraftDestroyed  Type = "craft_destroyed"
	ScoreChanged    Type = "score_changed"
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

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// Subscription is a handle returned by Subscribe
type Subscription struct {
	bus       *Bus
	eventType Type
	id        uint64
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{bus: b, eventType: eventType, id: id}
}

// Cancel removes the subscription's handler. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[s.eventType]
	for i, sub := range subs {
		if sub.id == s.id {
			b.handlers[s.eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[s.eventType]) == 0 {
		delete(b.handlers, s.eventType)
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}

// GameEvent is published when a run starts or ends
type GameEvent struct {
	BaseEvent
	Score int
	Lives int
	Won   bool
}

// NewGameEvent creates a new game lifecycle event
func NewGameEvent(eventType Type, source interface{}, score, lives int, won bool) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Score: score,
		Lives: lives,
		Won:   won,
	}
}

// HazardEvent describes a hazard that was destroyed or split
type HazardEvent struct {
	BaseEvent
	HazardID  uint64
	Tier      int
	Position  physics.Vector2D
	Fragments int
	ByCraft   bool
}

// NewHazardEvent creates a new hazard event
func NewHazardEvent(eventType Type, source interface{}, hazardID uint64, tier int, position physics.Vector2D, fragments int, byCraft bool) *HazardEvent {
	return &HazardEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		HazardID:  hazardID,
		Tier:      tier,
		Position:  position,
		Fragments: fragments,
		ByCraft:   byCraft,
	}
}

// CraftEvent describes the loss of the player craft
type CraftEvent struct {
	BaseEvent
	CraftID   uint64
	Position  physics.Vector2D
	LivesLeft int
}

// NewCraftEvent creates a new craft event
func NewCraftEvent(source interface{}, craftID uint64, position physics.Vector2D, livesLeft int) *CraftEvent {
	return &CraftEvent{
		BaseEvent: BaseEvent{
			EventType: CraftDestroyed,
			Source:    source,
		},
		CraftID:   craftID,
		Position:  position,
		LivesLeft: livesLeft,
	}
}

// ProjectileEvent describes a fired projectile
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	Position     physics.Vector2D
	Rotation     float64
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(source interface{}, projectileID uint64, position physics.Vector2D, rotation float64) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: ProjectileFired,
			Source:    source,
		},
		ProjectileID: projectileID,
		Position:     position,
		Rotation:     rotation,
	}
}

// ScoreEvent reports a score change
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

// Package broadcast fans state-changed notifications out to live viewers.
package broadcast

import (
	"sync"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// Type names the kind of change a notification carries
type Type string

const (
	TypeState              Type = "state"
	TypeEvent              Type = "event"
	TypeUndo               Type = "undo"
	TypeLifecycle          Type = "lifecycle"
	TypePersistenceFailure Type = "persistence_failure"
)

// SubscriberBuffer is the number of notifications held for a slow subscriber before drops start
const SubscriberBuffer = 16

// Notification is published after every change to a game
type Notification struct {
	Type   Type              `json:"type"`
	GameID string            `json:"game_id"`
	State  *models.GameState `json:"state,omitempty"`
	Event  *models.StatEvent `json:"event,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// Broker is an in-process pub/sub of notifications, keyed by game ID
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan Notification]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan Notification]struct{}),
	}
}

// Subscribe returns a channel that receives notifications for the given game
func (b *Broker) Subscribe(gameID string) chan Notification {
	ch := make(chan Notification, SubscriberBuffer)
	b.mu.Lock()
	if b.subs[gameID] == nil {
		b.subs[gameID] = make(map[chan Notification]struct{})
	}
	b.subs[gameID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the game's subscribers
func (b *Broker) Unsubscribe(gameID string, ch chan Notification) {
	b.mu.Lock()
	delete(b.subs[gameID], ch)
	if len(b.subs[gameID]) == 0 {
		delete(b.subs, gameID)
	}
	b.mu.Unlock()
}

// Publish sends a notification to every subscriber of its game. A subscriber
// whose buffer is full misses the notification.
func (b *Broker) Publish(n Notification) {
	b.mu.RLock()
	for ch := range b.subs[n.GameID] {
		select {
		case ch <- n:
		default:
		}
	}
	b.mu.RUnlock()
}

// Subscribers returns the number of subscribers of a game
func (b *Broker) Subscribers(gameID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[gameID])
}

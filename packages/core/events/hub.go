// Package events fans out team list changes to interested readers.
package events

import (
	"sync"

	"futsim-api/packages/core/models"

	"github.com/google/uuid"
)

// Snapshot is the team list of a championship at a given revision.
type Snapshot struct {
	ChampionshipID uint          `json:"championship_id"`
	Revision       uint64        `json:"revision"`
	Teams          []models.Team `json:"teams"`
}

// Hub keeps one revision counter per championship. Every Publish bumps the
// counter, so a subscriber only ever sees revisions go up. A subscriber that
// falls behind skips straight to the newest snapshot.
type Hub struct {
	mu        sync.Mutex
	revisions map[uint]uint64
	latest    map[uint]Snapshot
	subs      map[uint]map[uuid.UUID]*Subscription
}

func NewHub() *Hub {
	return &Hub{
		revisions: make(map[uint]uint64),
		latest:    make(map[uint]Snapshot),
		subs:      make(map[uint]map[uuid.UUID]*Subscription),
	}
}

type Subscription struct {
	ID             uuid.UUID
	ChampionshipID uint

	hub  *Hub
	ch   chan Snapshot
	once sync.Once
}

// C delivers snapshots. It is closed by Close.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if subs, ok := s.hub.subs[s.ChampionshipID]; ok {
			delete(subs, s.ID)
			if len(subs) == 0 {
				delete(s.hub.subs, s.ChampionshipID)
			}
		}
		close(s.ch)
	})
}

// Subscribe registers a reader for championshipID. If the championship
// already has a published snapshot it is delivered first.
func (h *Hub) Subscribe(championshipID uint) *Subscription {
	sub := &Subscription{
		ID:             uuid.New(),
		ChampionshipID: championshipID,
		hub:            h,
		ch:             make(chan Snapshot, 1),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[championshipID] == nil {
		h.subs[championshipID] = make(map[uuid.UUID]*Subscription)
	}
	h.subs[championshipID][sub.ID] = sub

	if snap, ok := h.latest[championshipID]; ok {
		sub.ch <- snap
	}
	return sub
}

// Publish records a new revision of the team list and hands it to every
// subscriber without blocking.
func (h *Hub) Publish(championshipID uint, teams []models.Team) Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.revisions[championshipID]++
	snap := Snapshot{
		ChampionshipID: championshipID,
		Revision:       h.revisions[championshipID],
		Teams:          append([]models.Team(nil), teams...),
	}
	h.latest[championshipID] = snap

	for _, sub := range h.subs[championshipID] {
		select {
		case sub.ch <- snap:
		default:
			// drop the stale one, the reader only needs the newest
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- snap
		}
	}
	return snap
}

// Revision returns the last published revision, 0 if none.
func (h *Hub) Revision(championshipID uint) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.revisions[championshipID]
}

// Forget drops the state kept for a deleted championship and closes its
// subscriptions.
func (h *Hub) Forget(championshipID uint) {
	h.mu.Lock()
	subs := h.subs[championshipID]
	delete(h.subs, championshipID)
	delete(h.latest, championshipID)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.once.Do(func() { close(sub.ch) })
	}
}

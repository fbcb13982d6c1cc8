// Package store caches the latest normalized payload per league.
package store

import (
	"sync"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

// MemoryStore holds the most recent payload for each league. Writes replace
// the whole payload so readers never see a partially-updated game list.
type MemoryStore struct {
	mu       sync.RWMutex
	payloads map[domain.League]domain.Payload
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{payloads: make(map[domain.League]domain.Payload)}
}

// SetPayload replaces the league's cached payload.
func (s *MemoryStore) SetPayload(p domain.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[p.League] = p
}

// Payload returns the league's cached payload, if any.
func (s *MemoryStore) Payload(league domain.League) (domain.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payloads[league]
	return p, ok
}

// Games returns the league's cached game list (nil when nothing is cached).
func (s *MemoryStore) Games(league domain.League) []domain.Game {
	p, ok := s.Payload(league)
	if !ok {
		return nil
	}
	return p.Games
}

// Leagues lists the leagues with cached payloads.
func (s *MemoryStore) Leagues() []domain.League {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.League, 0, len(s.payloads))
	for _, league := range domain.SupportedLeagues {
		if _, ok := s.payloads[league]; ok {
			out = append(out, league)
		}
	}
	return out
}

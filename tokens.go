package main

import (
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/bobsterx/mafiabot/game"
)

// Telegram caps callback data at 64 bytes, so inline buttons carry opaque
// ksuid tokens and the payload lives here until the button is pressed or
// the entry expires.

type pendingChoice struct {
	GameID   int64
	Kind     game.ActionKind
	TargetID int64
}

type tokenEntry struct {
	choice  pendingChoice
	created time.Time
}

type tokenStore struct {
	mu      sync.Mutex
	entries map[string]tokenEntry
	ttl     time.Duration
}

const tokenSweepThreshold = 4096

func newTokenStore(ttl time.Duration) *tokenStore {
	return &tokenStore{
		entries: make(map[string]tokenEntry),
		ttl:     ttl,
	}
}

// Put registers a choice and returns its token.
func (s *tokenStore) Put(c pendingChoice) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= tokenSweepThreshold {
		s.sweep()
	}
	token := ksuid.New().String()
	s.entries[token] = tokenEntry{choice: c, created: time.Now()}
	return token
}

// Get resolves a token. Expired and unknown tokens miss.
func (s *tokenStore) Get(token string) (pendingChoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return pendingChoice{}, false
	}
	if time.Since(e.created) > s.ttl {
		delete(s.entries, token)
		return pendingChoice{}, false
	}
	return e.choice, true
}

func (s *tokenStore) sweep() {
	cutoff := time.Now().Add(-s.ttl)
	for token, e := range s.entries {
		if e.created.Before(cutoff) {
			delete(s.entries, token)
		}
	}
}

func (s *tokenStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

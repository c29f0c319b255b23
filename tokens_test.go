package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobsterx/mafiabot/game"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	s := newTokenStore(time.Hour)

	want := pendingChoice{GameID: -100500, Kind: game.ActionKill, TargetID: 42}
	token := s.Put(want)
	require.NotEmpty(t, token)

	got, ok := s.Get(token)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = s.Get("no-such-token")
	assert.False(t, ok)
}

func TestTokenStoreUniqueTokens(t *testing.T) {
	s := newTokenStore(time.Hour)

	t1 := s.Put(pendingChoice{GameID: 1, Kind: game.ActionVote, TargetID: 2})
	t2 := s.Put(pendingChoice{GameID: 1, Kind: game.ActionVote, TargetID: 2})

	assert.NotEqual(t, t1, t2)
	assert.Equal(t, 2, s.len())
}

func TestTokenStoreExpiry(t *testing.T) {
	s := newTokenStore(time.Millisecond)

	token := s.Put(pendingChoice{GameID: 1, Kind: game.ActionSave, TargetID: 3})
	time.Sleep(5 * time.Millisecond)

	_, ok := s.Get(token)
	assert.False(t, ok)
}

package game

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(nil, testSettings(), zerolog.Nop())
}

func TestManagerCreateOrGet(t *testing.T) {
	m := newTestManager()

	g1, created := m.CreateOrGet(1, "Перша", NewPlayer(10, "a", "A"))
	require.True(t, created)
	g2, created := m.CreateOrGet(1, "Перша", NewPlayer(11, "b", "B"))
	assert.False(t, created)
	assert.Same(t, g1, g2)

	// an ended session is replaced by a fresh lobby
	g1.Abort()
	g3, created := m.CreateOrGet(1, "Перша", NewPlayer(12, "c", "C"))
	assert.True(t, created)
	assert.NotSame(t, g1, g3)
}

func TestManagerRemoveAborts(t *testing.T) {
	m := newTestManager()
	g, _ := m.CreateOrGet(1, "Місто", NewPlayer(10, "a", "A"))

	m.Remove(1)

	assert.Equal(t, PhaseEnded, g.Phase())
	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestManagerFindByPlayer(t *testing.T) {
	m := newTestManager()
	g, _ := m.CreateOrGet(1, "Перша", NewPlayer(10, "a", "A"))
	m.CreateOrGet(2, "Друга", NewPlayer(20, "b", "B"))

	found, ok := m.FindByPlayer(10)
	require.True(t, ok)
	assert.Same(t, g, found)

	_, ok = m.FindByPlayer(999)
	assert.False(t, ok)
}

func TestManagerDropsUnknownSessionInput(t *testing.T) {
	m := newTestManager()

	m.SubmitIntent(42, 1, ActionKill, 2)
	m.SubmitVote(42, 1, 2)
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := newTestManager()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			chatID := int64(i % 4)
			m.CreateOrGet(chatID, fmt.Sprintf("Чат %d", chatID), NewPlayer(int64(1000+i), "u", "U"))
			m.Get(chatID)
			m.FindByPlayer(int64(1000 + i))
		}(i)
	}
	wg.Wait()

	for chatID := int64(0); chatID < 4; chatID++ {
		_, ok := m.Get(chatID)
		assert.True(t, ok)
	}
}

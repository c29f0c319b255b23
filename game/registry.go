package game

import (
	"sync"

	"github.com/rs/zerolog"
)

// Manager owns every live session and routes inbound intents to the right
// one. It is the only structure shared between sessions, everything behind
// it is isolated per game.
type Manager struct {
	mu       sync.RWMutex
	games    map[int64]*Game
	out      chan<- Message
	settings Settings
	log      zerolog.Logger
}

func NewManager(out chan<- Message, settings Settings, logger zerolog.Logger) *Manager {
	return &Manager{
		games:    make(map[int64]*Game),
		out:      out,
		settings: settings,
		log:      logger,
	}
}

// CreateOrGet returns the session for the chat, creating a fresh one when
// none exists or the previous one has ended. The second return reports
// whether a new session was created.
func (m *Manager) CreateOrGet(chatID int64, title string, creator *Player) (*Game, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.games[chatID]; ok && g.Phase() != PhaseEnded {
		return g, false
	}
	g := NewGame(chatID, title, creator, m.out, m.settings, m.log)
	m.games[chatID] = g
	m.log.Info().Int64("chat_id", chatID).Msg("session created")
	return g, true
}

func (m *Manager) Get(chatID int64) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[chatID]
	return g, ok
}

// FindByPlayer locates the session a user is seated in.
func (m *Manager) FindByPlayer(userID int64) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.games {
		if g.HasPlayer(userID) {
			return g, true
		}
	}
	return nil, false
}

// Remove aborts and forgets a session.
func (m *Manager) Remove(chatID int64) {
	m.mu.Lock()
	g, ok := m.games[chatID]
	delete(m.games, chatID)
	m.mu.Unlock()

	if ok {
		g.Abort()
		m.log.Info().Int64("chat_id", chatID).Msg("session removed")
	}
}

// SubmitIntent routes a night action to its session. Unknown sessions are
// dropped silently, same as any other stale input.
func (m *Manager) SubmitIntent(chatID, actorID int64, kind ActionKind, targetID int64) {
	if g, ok := m.Get(chatID); ok {
		g.SubmitIntent(actorID, kind, targetID)
	}
}

// SubmitVote routes a day vote to its session.
func (m *Manager) SubmitVote(chatID, voterID, targetID int64) {
	if g, ok := m.Get(chatID); ok {
		g.SubmitVote(voterID, targetID)
	}
}

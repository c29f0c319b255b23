package game

import (
	"errors"
	"time"
)

// Role is the part a player acts during the game.
type Role string

const (
	RoleDon       Role = "don"
	RoleMafia     Role = "mafia"
	RoleDoctor    Role = "doctor"
	RoleDetective Role = "detective"
	RoleCivil     Role = "civil"
)

// Phase is the current stage of a game session.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseNight
	PhaseDay
	PhaseVote
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseNight:
		return "night"
	case PhaseDay:
		return "day"
	case PhaseVote:
		return "vote"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// ActionKind is what a submitted intent asks the game to do.
type ActionKind string

const (
	ActionKill    ActionKind = "kill"
	ActionSave    ActionKind = "save"
	ActionInspect ActionKind = "inspect"
	ActionShoot   ActionKind = "shoot"
	ActionVote    ActionKind = "vote"
)

// Winner names the faction that took the game.
type Winner string

const (
	WinnerNone  Winner = ""
	WinnerCivil Winner = "civil"
	WinnerMafia Winner = "mafia"
)

// Intent is a night action recorded in the ledger. Role is captured at
// submission time, the resolver never re-derives it.
type Intent struct {
	Role     Role
	ActorID  int64
	Kind     ActionKind
	TargetID int64
	seq      uint64
}

// VoteResult is the outcome of a day vote tally. TargetID is zero when
// nobody reached quorum.
type VoteResult struct {
	TargetID int64
	Votes    int
	Required int
}

// Choice is one selectable option attached to a private message.
type Choice struct {
	Label    string
	Kind     ActionKind
	TargetID int64
}

// Message is an outbound notification for the transport layer. GameID always
// carries the group chat the session belongs to, even for private messages,
// so replies can be routed back to the right session.
type Message struct {
	ChatID  int64
	GameID  int64
	Text    string
	GifKey  string
	Choices []Choice
}

// Settings holds per-session tunables.
type Settings struct {
	NightDuration    time.Duration
	DayDuration      time.Duration
	VoteDuration     time.Duration
	BotDecisionDelay time.Duration
	MinPlayers       int
	MaxPlayers       int
	MaxBots          int
}

// DefaultSettings mirrors the classic game pacing.
func DefaultSettings() Settings {
	return Settings{
		NightDuration:    60 * time.Second,
		DayDuration:      60 * time.Second,
		VoteDuration:     30 * time.Second,
		BotDecisionDelay: 5 * time.Second,
		MinPlayers:       5,
		MaxPlayers:       10,
		MaxBots:          6,
	}
}

var (
	ErrGameStarted      = errors.New("гра вже триває, лобі закрите")
	ErrAlreadyJoined    = errors.New("ви вже в грі")
	ErrNotInGame        = errors.New("ви не берете участі в цій грі")
	ErrLobbyFull        = errors.New("лобі заповнено")
	ErrBotLimit         = errors.New("досягнуто ліміт ботів")
	ErrNotEnoughPlayers = errors.New("замало гравців для старту")
)

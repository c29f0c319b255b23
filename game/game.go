package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bobsterx/mafiabot/metrics"
)

// Game is one mafia session bound to a group chat. All mutating entry
// points serialize on mu: inbound submissions, lobby changes and timer
// callbacks alike. Outbound notifications never block the session.
type Game struct {
	ChatID int64
	Title  string

	mu        sync.Mutex
	phase     Phase
	players   map[int64]*Player
	order     []int64
	actions   map[int64]Intent
	votes     map[int64]int64
	timers    map[string]*time.Timer
	seq       uint64
	dayCount  int
	botCount  int
	creatorID int64
	winner    Winner
	banner    string
	settings  Settings
	out       chan<- Message
	log       zerolog.Logger
	r         *rand.Rand
}

// NewGame creates a session in the lobby phase with the creator already
// seated.
func NewGame(chatID int64, title string, creator *Player, out chan<- Message, settings Settings, logger zerolog.Logger) *Game {
	g := &Game{
		ChatID:    chatID,
		Title:     title,
		phase:     PhaseLobby,
		players:   make(map[int64]*Player),
		actions:   make(map[int64]Intent),
		votes:     make(map[int64]int64),
		timers:    make(map[string]*time.Timer),
		creatorID: creator.ID,
		banner:    bannerNoKick,
		settings:  settings,
		out:       out,
		log:       logger.With().Int64("chat_id", chatID).Logger(),
		r:         rand.New(rand.NewSource(newSeed())),
	}
	g.players[creator.ID] = creator
	g.order = append(g.order, creator.ID)
	return g
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

func (g *Game) CreatorID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.creatorID
}

// HasPlayer reports whether the user is seated in this session.
func (g *Game) HasPlayer(id int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.players[id]
	return ok
}

// Join seats a player while the lobby is open.
func (g *Game) Join(p *Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseLobby {
		return ErrGameStarted
	}
	if len(g.players) >= g.settings.MaxPlayers {
		return ErrLobbyFull
	}
	if _, ok := g.players[p.ID]; ok {
		return ErrAlreadyJoined
	}
	g.players[p.ID] = p
	g.order = append(g.order, p.ID)
	g.log.Info().Int64("player", p.ID).Msg("player joined")
	return nil
}

// Leave removes a player. Only possible while the lobby is open, mid-game
// players stay seated until teardown.
func (g *Game) Leave(id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseLobby {
		return ErrGameStarted
	}
	if _, ok := g.players[id]; !ok {
		return ErrNotInGame
	}
	delete(g.players, id)
	for i, pid := range g.order {
		if pid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	if id == g.creatorID {
		g.transferCreator()
	}
	g.log.Info().Int64("player", id).Msg("player left")
	return nil
}

// transferCreator hands session control to the next seated human, or the
// first remaining seat when only bots are left.
func (g *Game) transferCreator() {
	for _, pid := range g.order {
		if !g.players[pid].IsBot {
			g.creatorID = pid
			g.log.Info().Int64("creator", pid).Msg("creator transferred")
			return
		}
	}
	if len(g.order) > 0 {
		g.creatorID = g.order[0]
		g.log.Info().Int64("creator", g.creatorID).Msg("creator transferred")
	}
}

// AddBot seats an automated player with a synthetic negative id.
func (g *Game) AddBot() (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseLobby {
		return nil, ErrGameStarted
	}
	if g.botCount >= g.settings.MaxBots {
		return nil, ErrBotLimit
	}
	if len(g.players) >= g.settings.MaxPlayers {
		return nil, ErrLobbyFull
	}
	g.botCount++
	bot := NewPlayer(-1000-int64(g.botCount), fmt.Sprintf("bot%d", g.botCount), fmt.Sprintf("🤖 Бот #%d", g.botCount))
	bot.IsBot = true
	g.players[bot.ID] = bot
	g.order = append(g.order, bot.ID)
	return bot, nil
}

// Start deals roles and opens the first night.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseLobby {
		return ErrGameStarted
	}
	if len(g.players) < g.settings.MinPlayers {
		return ErrNotEnoughPlayers
	}

	g.assignRoles()
	g.dayCount = 0
	g.winner = WinnerNone
	metrics.GamesStarted.Inc()
	g.log.Info().Int("players", len(g.players)).Msg("game started")

	g.broadcast(textGameStarted, gifNight)
	g.sendRoleMessages()
	g.beginNight()
	return nil
}

// Abort tears the session down without declaring a winner.
func (g *Game) Abort() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseEnded {
		return
	}
	g.phase = PhaseEnded
	g.cancelAllTimers()
	g.log.Info().Msg("game aborted")
}

func (g *Game) sendRoleMessages() {
	for _, id := range g.order {
		p := g.players[id]
		rt := roleTexts[p.Role]
		g.private(p, fmt.Sprintf(textRoleIntro, g.Title, rt.Title, rt.Blurb), nil)
	}
}

// beginNight transitions into the night phase: fresh ledger, banner,
// role prompts, bot decision timers and the resolution timeout.
func (g *Game) beginNight() {
	g.phase = PhaseNight
	g.resetActions()

	g.broadcast(g.banner, gifNight)
	g.banner = bannerNoKick

	donAlive := g.roleAlive(RoleDon)
	for _, id := range g.order {
		p := g.players[id]
		if !p.Alive {
			continue
		}
		switch p.Role {
		case RoleDon:
			g.private(p, textPromptDon, g.targetChoices(p.ID, ActionKill, false))
		case RoleMafia:
			if !donAlive {
				g.private(p, textPromptMafia, g.targetChoices(p.ID, ActionKill, false))
			}
		case RoleDoctor:
			g.private(p, textPromptDoctor, g.targetChoices(p.ID, ActionSave, p.CanSelfHeal))
		case RoleDetective:
			g.private(p, textPromptDetect, g.detectiveMenu(p))
		}
	}

	for _, id := range g.order {
		p := g.players[id]
		if !p.Alive || !p.IsBot {
			continue
		}
		acts := p.Role == RoleDon || p.Role == RoleDoctor || (p.Role == RoleMafia && !donAlive)
		if !acts {
			continue
		}
		botID := p.ID
		g.scheduleTimer(fmt.Sprintf("bot_%d", botID), g.settings.BotDecisionDelay, func() { g.botDecision(botID) })
	}

	g.scheduleTimer(timerResolveNight, g.settings.NightDuration, g.resolveNight)
	g.log.Info().Str("phase", g.phase.String()).Msg("night begins")
}

// startVote is the day-timeout callback.
func (g *Game) startVote() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseDay {
		g.log.Debug().Str("phase", g.phase.String()).Msg("stale vote-start timer ignored")
		return
	}
	g.phase = PhaseVote
	g.resetActions()

	g.broadcast(fmt.Sprintf(textVoteStarts, int(g.settings.VoteDuration.Seconds())), gifVote)
	for _, id := range g.order {
		p := g.players[id]
		if !p.Alive {
			continue
		}
		g.private(p, textPromptVote, g.targetChoices(p.ID, ActionVote, false))
	}
	g.scheduleTimer(timerResolveVote, g.settings.VoteDuration, g.resolveVote)
	g.log.Info().Msg("vote begins")
}

// botDecision synthesizes a night submission for an automated player. It
// runs through the regular ledger path so every invariant applies to bots
// as well.
func (g *Game) botDecision(actorID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseNight {
		return
	}
	actor, ok := g.players[actorID]
	if !ok || !actor.Alive || !actor.IsBot {
		return
	}
	if actor.Role == RoleDetective {
		return
	}

	var choices []*Player
	for _, id := range g.order {
		p := g.players[id]
		if p.Alive && p.ID != actorID {
			choices = append(choices, p)
		}
	}
	if len(choices) == 0 {
		return
	}
	target := choices[g.r.Intn(len(choices))]

	switch actor.Role {
	case RoleDon, RoleMafia:
		g.submitIntent(actorID, ActionKill, target.ID)
	case RoleDoctor:
		if actor.CanSelfHeal && g.r.Intn(2) == 0 {
			target = actor
		}
		g.submitIntent(actorID, ActionSave, target.ID)
	}
}

// TargetOptions lists the living targets the actor may pick for the given
// action, respecting self-heal and one-shot constraints. Used by the
// transport layer to render choice submenus.
func (g *Game) TargetOptions(actorID int64, kind ActionKind) []Choice {
	g.mu.Lock()
	defer g.mu.Unlock()

	actor, ok := g.players[actorID]
	if !ok || !actor.Alive {
		return nil
	}
	switch kind {
	case ActionKill, ActionSave, ActionInspect, ActionShoot:
		if g.phase != PhaseNight {
			return nil
		}
	case ActionVote:
		if g.phase != PhaseVote {
			return nil
		}
	default:
		return nil
	}
	if kind == ActionShoot && actor.HasShot {
		return nil
	}
	allowSelf := kind == ActionSave && actor.CanSelfHeal
	return g.targetChoices(actorID, kind, allowSelf)
}

func (g *Game) targetChoices(actorID int64, kind ActionKind, allowSelf bool) []Choice {
	choices := make([]Choice, 0, len(g.order))
	for _, id := range g.order {
		p := g.players[id]
		if !p.Alive {
			continue
		}
		if p.ID == actorID && !allowSelf {
			continue
		}
		choices = append(choices, Choice{Label: p.DisplayName, Kind: kind, TargetID: p.ID})
	}
	return choices
}

// detectiveMenu offers inspect and, while unused, the one lethal shot.
// TargetID zero marks a submenu entry, the transport expands it via
// TargetOptions.
func (g *Game) detectiveMenu(p *Player) []Choice {
	menu := []Choice{{Label: textDetectChoose, Kind: ActionInspect}}
	if !p.HasShot {
		menu = append(menu, Choice{Label: textDetectShoot, Kind: ActionShoot})
	}
	return menu
}

func (g *Game) livingPlayers() []*Player {
	living := make([]*Player, 0, len(g.players))
	for _, id := range g.order {
		if p := g.players[id]; p.Alive {
			living = append(living, p)
		}
	}
	return living
}

// Snapshot is a read-only view of the session for lobby rendering.
type Snapshot struct {
	Phase  Phase
	Humans []string
	Bots   []string
	Count  int
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{Phase: g.phase, Count: len(g.players)}
	for _, id := range g.order {
		p := g.players[id]
		if p.IsBot {
			s.Bots = append(s.Bots, p.DisplayName)
		} else {
			s.Humans = append(s.Humans, p.DisplayName)
		}
	}
	return s
}

func (g *Game) broadcast(text, gifKey string) {
	g.send(Message{ChatID: g.ChatID, GameID: g.ChatID, Text: text, GifKey: gifKey})
}

// private notifies one player. Automated players never receive messages.
func (g *Game) private(p *Player, text string, choices []Choice) {
	if p.IsBot {
		return
	}
	g.send(Message{ChatID: p.ID, GameID: g.ChatID, Text: text, Choices: choices})
}

// send hands a message to the transport without ever blocking the session;
// an unread message is dropped, delivery is fire-and-forget.
func (g *Game) send(m Message) {
	select {
	case g.out <- m:
	default:
		g.log.Warn().Int64("to", m.ChatID).Msg("outbound message dropped")
	}
}

package game

import (
	"fmt"

	"github.com/bobsterx/mafiabot/metrics"
)

// resolveNight is the night-timeout callback.
func (g *Game) resolveNight() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resolveNightLocked()
}

// resolveNightLocked applies the night intents. Reads happen first and do
// not touch the ledger, all mutation follows: deaths in victim order, the
// don succession, then the win check.
func (g *Game) resolveNightLocked() {
	if g.phase != PhaseNight {
		g.log.Debug().Str("phase", g.phase.String()).Msg("stale night resolution ignored")
		return
	}
	g.cancelTimer(timerResolveNight)

	var savedTarget int64
	if doc, ok := g.actionByRole(RoleDoctor); ok {
		if doctor := g.players[doc.ActorID]; doctor != nil && doc.TargetID == doctor.ID {
			doctor.CanSelfHeal = false
		}
		savedTarget = doc.TargetID
	}

	// mafia victim first, detective's shot second
	victims := make([]int64, 0, 2)
	lethal, ok := g.actionByRole(RoleDon)
	if !ok {
		lethal, ok = g.actionByRole(RoleMafia)
	}
	if ok && lethal.TargetID != 0 {
		victims = append(victims, lethal.TargetID)
	}

	var inspection string
	var detectiveID int64
	if det, ok := g.actionByRole(RoleDetective); ok {
		detectiveID = det.ActorID
		switch det.Kind {
		case ActionInspect:
			if target := g.players[det.TargetID]; target != nil {
				inspection = fmt.Sprintf(textInspection, target.DisplayName, roleTexts[target.Role].Title)
			}
		case ActionShoot:
			if det.TargetID != 0 {
				victims = append(victims, det.TargetID)
				if d := g.players[det.ActorID]; d != nil {
					d.HasShot = true
				}
			}
		}
	}

	docSaved := false
	var deaths []*Player
	for _, id := range victims {
		if savedTarget != 0 && id == savedTarget {
			docSaved = true
			continue
		}
		target := g.players[id]
		if target == nil || !target.Alive {
			continue
		}
		target.Alive = false
		deaths = append(deaths, target)
	}
	if len(deaths) > 0 {
		metrics.Deaths.Add(float64(len(deaths)))
	}

	g.announceNight(deaths, docSaved)

	if inspection != "" {
		if det := g.players[detectiveID]; det != nil {
			g.private(det, inspection, nil)
		}
	}

	if g.checkGameEnd() {
		return
	}
	g.startDayLocked()
}

// announceNight reports the morning news and handles the don succession:
// a dead don hands the role to the first living mafia in seat order, with
// no mafia left the civilians take the game on the spot.
func (g *Game) announceNight(deaths []*Player, docSaved bool) {
	event := "event_everyone_alive"
	switch {
	case len(deaths) == 1:
		event = "event_single_death"
	case len(deaths) > 1:
		event = "event_both_died"
	}
	text := morningEvents[event]
	if docSaved {
		text += "\n\n" + morningEvents["doc_saved"]
	}
	g.broadcast(text, gifMorning)

	for _, dead := range deaths {
		g.broadcast(fmt.Sprintf(textDiedAtNight, dead.Mention()), gifDead)
		switch dead.Role {
		case RoleDon:
			if heir := g.firstLiving(RoleMafia); heir != nil {
				g.broadcast(morningEvents["don_dead_mafia_alive"], "")
				heir.Role = RoleDon
				g.log.Info().Int64("heir", heir.ID).Msg("don succession")
			} else {
				g.broadcast(morningEvents["don_dead_no_mafia"], gifLostMafia)
				g.winner = WinnerCivil
			}
		case RoleDoctor:
			g.broadcast(morningEvents["doc_dead"], "")
		case RoleDetective:
			g.broadcast(morningEvents["detective_dead"], "")
		case RoleCivil:
			g.broadcast(morningEvents["civil_dead"], "")
		}
	}
}

func (g *Game) firstLiving(role Role) *Player {
	for _, id := range g.order {
		if p := g.players[id]; p.Alive && p.Role == role {
			return p
		}
	}
	return nil
}

func (g *Game) startDayLocked() {
	if g.winner != WinnerNone {
		g.finishLocked()
		return
	}
	g.phase = PhaseDay
	g.dayCount++
	g.broadcast(fmt.Sprintf(textDayComes, g.dayCount), gifMorning)
	g.scheduleTimer(timerStartVote, g.settings.DayDuration, g.startVote)
	g.log.Info().Int("day", g.dayCount).Msg("day begins")
}

// resolveVote is the vote-timeout callback.
func (g *Game) resolveVote() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resolveVoteLocked()
}

func (g *Game) resolveVoteLocked() {
	if g.phase != PhaseVote {
		g.log.Debug().Str("phase", g.phase.String()).Msg("stale vote resolution ignored")
		return
	}
	g.cancelTimer(timerResolveVote)

	result := g.calculateVotes()
	g.log.Info().Int64("target", result.TargetID).Int("votes", result.Votes).Int("required", result.Required).Msg("vote resolved")
	if result.TargetID == 0 {
		g.broadcast(textNobodyLynched, "")
		g.beginNight()
		return
	}

	victim := g.players[result.TargetID]
	victim.Alive = false
	metrics.Deaths.Inc()
	g.banner = bannerKicked
	g.broadcast(fmt.Sprintf(textLynched, victim.Mention()), gifDead)

	if g.checkGameEnd() {
		return
	}
	g.beginNight()
}

// calculateVotes tallies the day vote. Elimination needs a strict quorum of
// floor(living/2)+1; a tied maximum goes to the target seen first in seat
// order, which keeps the outcome deterministic.
func (g *Game) calculateVotes() VoteResult {
	required := len(g.livingPlayers())/2 + 1

	counts := make(map[int64]int)
	var seen []int64
	for _, voterID := range g.order {
		target, ok := g.votes[voterID]
		if !ok || target == 0 {
			continue
		}
		if counts[target] == 0 {
			seen = append(seen, target)
		}
		counts[target]++
	}

	var best int64
	bestVotes := 0
	for _, target := range seen {
		if counts[target] > bestVotes {
			best = target
			bestVotes = counts[target]
		}
	}
	if best != 0 && bestVotes >= required {
		return VoteResult{TargetID: best, Votes: bestVotes, Required: required}
	}
	return VoteResult{TargetID: 0, Votes: bestVotes, Required: required}
}

// checkGameEnd evaluates the win condition after any death. Civilians win
// once no mafia breathes, the mafia wins at parity.
func (g *Game) checkGameEnd() bool {
	if g.winner == WinnerNone {
		mafiaAlive := 0
		othersAlive := 0
		for _, p := range g.livingPlayers() {
			if p.Role == RoleDon || p.Role == RoleMafia {
				mafiaAlive++
			} else {
				othersAlive++
			}
		}
		switch {
		case mafiaAlive == 0:
			g.winner = WinnerCivil
		case mafiaAlive >= othersAlive:
			g.winner = WinnerMafia
		}
	}
	if g.winner != WinnerNone {
		g.finishLocked()
		return true
	}
	return false
}

func (g *Game) finishLocked() {
	if g.phase == PhaseEnded {
		g.log.Error().Msg("finish on an already ended game")
		return
	}
	switch g.winner {
	case WinnerCivil:
		g.broadcast(morningEvents["event_civil_won"], gifLostMafia)
	case WinnerMafia:
		g.broadcast(morningEvents["event_mafia_win"], gifLostCivil)
	}
	g.phase = PhaseEnded
	g.cancelAllTimers()
	metrics.GamesFinished.WithLabelValues(string(g.winner)).Inc()
	g.log.Info().Str("winner", string(g.winner)).Msg("game finished")
}

package game

import (
	"fmt"

	"github.com/bobsterx/mafiabot/metrics"
)

// The action ledger: night intents and day votes for the current phase.
// Everything stale, dead or malformed is dropped without an error so a late
// submission from a just-resolved phase can never corrupt the next one.

// SubmitIntent records a night action for the actor. Resubmission overwrites
// the previous intent.
func (g *Game) SubmitIntent(actorID int64, kind ActionKind, targetID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submitIntent(actorID, kind, targetID)
}

func (g *Game) submitIntent(actorID int64, kind ActionKind, targetID int64) {
	if g.phase != PhaseNight {
		g.log.Debug().Int64("actor", actorID).Str("kind", string(kind)).Msg("intent outside night dropped")
		return
	}
	actor, ok := g.players[actorID]
	if !ok || !actor.Alive {
		return
	}

	switch actor.Role {
	case RoleDon, RoleMafia:
		if kind != ActionKill {
			return
		}
	case RoleDoctor:
		if kind != ActionSave {
			return
		}
		if targetID == actor.ID && !actor.CanSelfHeal {
			return
		}
	case RoleDetective:
		if kind != ActionInspect && kind != ActionShoot {
			return
		}
		// one shot per game, rejected at submission time
		if kind == ActionShoot && actor.HasShot {
			return
		}
	default:
		return
	}

	g.seq++
	g.actions[actorID] = Intent{Role: actor.Role, ActorID: actorID, Kind: kind, TargetID: targetID, seq: g.seq}
	metrics.Intents.WithLabelValues(string(kind)).Inc()

	if !actor.IsBot {
		g.private(actor, textChoiceSaved, nil)
	}
	if line, ok := actionLogLines[actor.Role]; ok {
		g.broadcast(line, "")
	}

	if g.nightComplete() {
		g.resolveNightLocked()
	}
}

// SubmitVote records the voter's pick for the day vote. A target of zero is
// an abstention and overwrites any earlier pick.
func (g *Game) SubmitVote(voterID, targetID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseVote {
		g.log.Debug().Int64("voter", voterID).Msg("vote outside vote phase dropped")
		return
	}
	voter, ok := g.players[voterID]
	if !ok || !voter.Alive {
		return
	}
	if targetID != 0 {
		target, ok := g.players[targetID]
		if !ok || !target.Alive {
			return
		}
		g.private(voter, fmt.Sprintf(textVoteSaved, target.DisplayName), nil)
	}
	g.votes[voterID] = targetID
	metrics.Intents.WithLabelValues(string(ActionVote)).Inc()

	if g.voteComplete() {
		g.resolveVoteLocked()
	}
}

// actionByRole returns the freshest intent submitted by a holder of the
// given role.
func (g *Game) actionByRole(role Role) (Intent, bool) {
	var best Intent
	found := false
	for _, in := range g.actions {
		if in.Role != role {
			continue
		}
		if !found || in.seq > best.seq {
			best = in
			found = true
		}
	}
	return best, found
}

// resetActions clears the ledger for the next phase.
func (g *Game) resetActions() {
	g.actions = make(map[int64]Intent)
	g.votes = make(map[int64]int64)
}

// nightComplete reports whether every actor the night waits on has
// submitted. Early resolution is skipped when nobody is required to act,
// the timeout handles that night.
func (g *Game) nightComplete() bool {
	required := g.requiredNightActors()
	if len(required) == 0 {
		return false
	}
	for _, id := range required {
		if _, ok := g.actions[id]; !ok {
			return false
		}
	}
	return true
}

func (g *Game) requiredNightActors() []int64 {
	var required []int64
	donAlive := g.roleAlive(RoleDon)
	for _, id := range g.order {
		p := g.players[id]
		if !p.Alive {
			continue
		}
		switch p.Role {
		case RoleDon, RoleDoctor, RoleDetective:
			required = append(required, id)
		case RoleMafia:
			if !donAlive {
				required = append(required, id)
			}
		}
	}
	return required
}

func (g *Game) voteComplete() bool {
	for _, id := range g.order {
		p := g.players[id]
		if !p.Alive {
			continue
		}
		if _, ok := g.votes[id]; !ok {
			return false
		}
	}
	return true
}

func (g *Game) roleAlive(role Role) bool {
	for _, p := range g.players {
		if p.Alive && p.Role == role {
			return true
		}
	}
	return false
}

package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// newSeed draws a high-entropy seed for the session's rand.Rand, falling
// back to the wall clock if crypto/rand is unavailable.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// assignRoles deals roles to the full player set: shuffle once, then assign
// by position. The detective goes to the first human in the shuffled order
// so bots never hold it while humans are present. One don always, one mafia
// only in games of eight and more, one doctor if capacity remains, civilians
// for the rest. Caller holds the mutex and has verified the player count.
func (g *Game) assignRoles() {
	all := make([]*Player, 0, len(g.players))
	for _, id := range g.order {
		p := g.players[id]
		p.Alive = true
		p.Role = ""
		p.CanSelfHeal = true
		p.HasShot = false
		all = append(all, p)
	}

	g.r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	mafiaCount := 0
	if len(all) >= 8 {
		mafiaCount = 1
	}

	detective := all[0]
	for _, p := range all {
		if !p.IsBot {
			detective = p
			break
		}
	}
	detective.Role = RoleDetective

	remaining := make([]*Player, 0, len(all)-1)
	for _, p := range all {
		if p.ID != detective.ID {
			remaining = append(remaining, p)
		}
	}

	remaining[0].Role = RoleDon

	ptr := 1
	for i := 0; i < mafiaCount && ptr < len(remaining); i++ {
		remaining[ptr].Role = RoleMafia
		ptr++
	}

	if ptr < len(remaining) {
		remaining[ptr].Role = RoleDoctor
		ptr++
	}

	for _, p := range all {
		if p.Role == "" {
			p.Role = RoleCivil
		}
	}
}

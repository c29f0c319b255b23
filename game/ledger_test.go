package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitOutsideNightDropped(t *testing.T) {
	g := cast6(t)

	for _, phase := range []Phase{PhaseLobby, PhaseDay, PhaseVote, PhaseEnded} {
		g.phase = phase
		g.SubmitIntent(1, ActionKill, 4)
		assert.Empty(t, g.actions, "intent accepted in phase %s", phase)
	}
}

func TestSubmitDeadOrUnknownActorDropped(t *testing.T) {
	g := cast6(t)
	g.players[1].Alive = false

	g.SubmitIntent(1, ActionKill, 4)
	g.SubmitIntent(999, ActionKill, 4)

	assert.Empty(t, g.actions)
}

func TestResubmitOverwrites(t *testing.T) {
	g := cast6(t)

	g.SubmitIntent(1, ActionKill, 4)
	g.SubmitIntent(1, ActionKill, 5)

	assert.Len(t, g.actions, 1)
	in, ok := g.actionByRole(RoleDon)
	require.True(t, ok)
	assert.Equal(t, int64(5), in.TargetID)
}

func TestSubmitRoleKindMismatchDropped(t *testing.T) {
	g := cast6(t)

	g.SubmitIntent(2, ActionKill, 4)    // doctor cannot kill
	g.SubmitIntent(4, ActionKill, 5)    // civilians have no night action
	g.SubmitIntent(1, ActionInspect, 4) // don cannot inspect

	assert.Empty(t, g.actions)
}

func TestDetectiveSecondShotRejectedAtSubmission(t *testing.T) {
	g := cast6(t)
	g.players[3].HasShot = true

	g.SubmitIntent(3, ActionShoot, 4)
	assert.Empty(t, g.actions)
	assert.Nil(t, g.TargetOptions(3, ActionShoot))

	g.SubmitIntent(3, ActionInspect, 4)
	in, ok := g.actionByRole(RoleDetective)
	require.True(t, ok)
	assert.Equal(t, ActionInspect, in.Kind)
}

func TestDoctorSelfSaveUnavailableAfterUse(t *testing.T) {
	g := cast6(t)
	g.players[2].CanSelfHeal = false

	g.SubmitIntent(2, ActionSave, 2)
	assert.Empty(t, g.actions)

	for _, c := range g.TargetOptions(2, ActionSave) {
		assert.NotEqual(t, int64(2), c.TargetID, "spent self-heal still offered")
	}

	g.SubmitIntent(2, ActionSave, 4)
	_, ok := g.actionByRole(RoleDoctor)
	assert.True(t, ok)
}

func TestActionByRolePicksFreshest(t *testing.T) {
	g := newLobby(t, 8)
	setNight(g, map[int64]Role{1: RoleDon, 2: RoleMafia, 3: RoleDoctor, 4: RoleDetective})
	g.players[1].Alive = false

	g.SubmitIntent(2, ActionKill, 5)
	g.SubmitIntent(2, ActionKill, 6)

	in, ok := g.actionByRole(RoleMafia)
	require.True(t, ok)
	assert.Equal(t, int64(6), in.TargetID)
}

func TestVoteOutsidePhaseDropped(t *testing.T) {
	g := cast6(t)

	g.SubmitVote(4, 1)
	assert.Empty(t, g.votes)
}

func TestVoteDeadVoterAndTargetDropped(t *testing.T) {
	g := cast6(t)
	g.phase = PhaseVote
	g.players[5].Alive = false

	g.SubmitVote(5, 1) // dead voter
	g.SubmitVote(4, 5) // dead target

	assert.Empty(t, g.votes)
}

func TestVoteAbstentionOverwrites(t *testing.T) {
	g := cast6(t)
	g.phase = PhaseVote

	g.SubmitVote(4, 1)
	g.SubmitVote(4, 0)

	assert.Equal(t, int64(0), g.votes[4])
	assert.Equal(t, int64(0), g.calculateVotes().TargetID)
}

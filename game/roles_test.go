package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRolesDistribution(t *testing.T) {
	for n := 5; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			g := newLobby(t, n)
			g.assignRoles()

			counts := map[Role]int{}
			for _, p := range g.players {
				require.NotEmpty(t, p.Role, "player %d left without a role", p.ID)
				counts[p.Role]++
			}

			assert.Equal(t, 1, counts[RoleDon])
			assert.Equal(t, 1, counts[RoleDetective])
			assert.Equal(t, 1, counts[RoleDoctor])
			wantMafia := 0
			if n >= 8 {
				wantMafia = 1
			}
			assert.Equal(t, wantMafia, counts[RoleMafia])
			assert.Equal(t, n-3-wantMafia, counts[RoleCivil])
		})
	}
}

func TestAssignRolesDetectivePrefersHumans(t *testing.T) {
	g := newLobby(t, 2)
	for i := 0; i < 4; i++ {
		_, err := g.AddBot()
		require.NoError(t, err)
	}

	for i := 0; i < 50; i++ {
		g.assignRoles()
		detective := g.firstLiving(RoleDetective)
		require.NotNil(t, detective)
		assert.False(t, detective.IsBot, "detective landed on a bot while humans are present")
	}
}

func TestAssignRolesResetsFlags(t *testing.T) {
	g := newLobby(t, 5)
	g.players[2].Alive = false
	g.players[3].CanSelfHeal = false
	g.players[4].HasShot = true

	g.assignRoles()

	for _, p := range g.players {
		assert.True(t, p.Alive)
		assert.True(t, p.CanSelfHeal)
		assert.False(t, p.HasShot)
	}
}

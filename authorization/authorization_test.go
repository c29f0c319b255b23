package authorization

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/bobsterx/mafiabot/game"
)

func TestUserCouldModifyGame(t *testing.T) {
	creator := game.NewPlayer(42, "creator", "Creator")
	g := game.NewGame(10, "Місто", creator, nil, game.DefaultSettings(), zerolog.Nop())

	if !UserCouldModifyGame(42, g) {
		t.Errorf("Expected creator can do changes to the game")
	}

	if UserCouldModifyGame(10, g) {
		t.Errorf("Not expected stranger can do changes to the game")
	}
}

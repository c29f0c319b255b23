package authorization

import (
	"github.com/bobsterx/mafiabot/game"
)

// UserCouldModifyGame returns if given user could do anything with given game
// TODO: do check regarding user's group role (an admin should be able to do smth with the game)
func UserCouldModifyGame(userID int64, g *game.Game) bool {
	return g.CreatorID() == userID
}

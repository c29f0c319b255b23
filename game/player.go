package game

import "fmt"

// Player is a single participant of a session. Fields are mutated only by
// role assignment and resolution, both under the session mutex.
type Player struct {
	ID          int64
	Username    string
	DisplayName string
	IsBot       bool
	Role        Role
	Alive       bool
	CanSelfHeal bool
	HasShot     bool
}

func NewPlayer(id int64, username, displayName string) *Player {
	return &Player{
		ID:          id,
		Username:    username,
		DisplayName: displayName,
		Alive:       true,
		CanSelfHeal: true,
	}
}

// Mention renders the player for group announcements. Humans without a
// username get an inline tg:// link so the mention stays clickable.
func (p *Player) Mention() string {
	if p.IsBot {
		return p.DisplayName
	}
	if p.Username != "" {
		return "@" + p.Username
	}
	return fmt.Sprintf("<a href=\"tg://user?id=%d\">%s</a>", p.ID, p.DisplayName)
}

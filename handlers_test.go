package main

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/stretchr/testify/assert"

	"github.com/bobsterx/mafiabot/game"
)

func TestFormatLobby(t *testing.T) {
	s := game.Snapshot{
		Humans: []string{"Олена", "Тарас"},
		Bots:   []string{"🤖 Бот #1"},
		Count:  3,
	}

	text := formatLobby(s, 5, 10)

	assert.Contains(t, text, "<b>Лобі мафії</b>")
	assert.Contains(t, text, "• Олена")
	assert.Contains(t, text, "• Тарас")
	assert.Contains(t, text, "🤖 Бот #1")
	assert.Contains(t, text, "Зареєстровано: 3/10")
	assert.Contains(t, text, "Мінімум для старту: 5")
}

func TestFormatLobbyEmpty(t *testing.T) {
	text := formatLobby(game.Snapshot{}, 5, 10)

	assert.Contains(t, text, "Гравців немає")
	assert.NotContains(t, text, "Боти:")
}

func TestPlayerFrom(t *testing.T) {
	p := playerFrom(&tgbotapi.User{ID: 7, UserName: "taras", FirstName: "Тарас", LastName: "Шевченко"})

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "taras", p.Username)
	assert.Equal(t, "Тарас Шевченко", p.DisplayName)
	assert.False(t, p.IsBot)

	p = playerFrom(&tgbotapi.User{ID: 8, FirstName: "Олена"})
	assert.Equal(t, "Олена", p.DisplayName)
}

package main

import (
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/rs/zerolog"

	"github.com/bobsterx/mafiabot/authorization"
	"github.com/bobsterx/mafiabot/config"
	"github.com/bobsterx/mafiabot/game"
)

const (
	textGreeting = "Привіт! Це бот для гри в мафію. Додайте мене в групу та використовуйте /mafia, щоб створити лобі.\n" +
		"Не забудьте залишити мені повідомлення, щоб я міг писати вам у грі."
	textGroupsOnly     = "Гра доступна лише в групах."
	textGameLaunched   = "Гру розпочато!"
	textGameStopped    = "Гру зупинено"
	textLobbyNotFound  = "Лобі не знайдено, спробуйте /mafia"
	textCreatorOnly    = "Тільки ініціатор гри може це зробити"
	textStaleButton    = "Кнопка застаріла"
	textVoteRecorded   = "Голос зафіксовано"
	textChoiceRecorded = "Вибір збережено"
	textPickInspect    = "Кого перевіряємо?"
	textPickShoot      = "У кого стріляємо?"
	textDefaultTitle   = "Місто"
)

type app struct {
	bot    *tgbotapi.BotAPI
	mgr    *game.Manager
	tokens *tokenStore
	cfg    config.Config
	log    zerolog.Logger
}

// deliver sends one outbound game message: GIF with caption when the asset
// exists, plain text otherwise. Choices become an inline keyboard of tokens.
func (a *app) deliver(m game.Message) {
	var markup *tgbotapi.InlineKeyboardMarkup
	if len(m.Choices) > 0 {
		mk := a.choicesKeyboard(m.GameID, m.Choices)
		markup = &mk
	}

	if m.GifKey != "" && markup == nil {
		if path, ok := config.GifPath(a.cfg.GifDir, m.GifKey); ok {
			if _, err := os.Stat(path); err == nil {
				anim := tgbotapi.NewAnimationUpload(m.ChatID, path)
				anim.Caption = m.Text
				anim.ParseMode = tgbotapi.ModeHTML
				if _, err := a.bot.Send(anim); err == nil {
					return
				}
				a.log.Warn().Str("gif", m.GifKey).Int64("chat_id", m.ChatID).Msg("animation send failed, degrading to text")
			}
		}
	}

	msg := tgbotapi.NewMessage(m.ChatID, m.Text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	if _, err := a.bot.Send(msg); err != nil {
		a.log.Warn().Err(err).Int64("chat_id", m.ChatID).Msg("send failed")
	}
}

func (a *app) choicesKeyboard(gameID int64, choices []game.Choice) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices))
	for _, c := range choices {
		token := a.tokens.Put(pendingChoice{GameID: gameID, Kind: c.Kind, TargetID: c.TargetID})
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(c.Label, token)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (a *app) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		a.handleCallback(update.CallbackQuery)
		return
	}
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	switch msg.Command() {
	case "start":
		if msg.Chat.IsPrivate() {
			a.reply(msg.Chat.ID, textGreeting)
		}
	case "mafia":
		a.handleLobbyCommand(msg)
	case "endgame":
		a.handleEndGame(msg)
	}
}

func (a *app) handleLobbyCommand(msg *tgbotapi.Message) {
	if msg.Chat.IsPrivate() {
		a.reply(msg.Chat.ID, textGroupsOnly)
		return
	}
	title := msg.Chat.Title
	if title == "" {
		title = textDefaultTitle
	}
	g, _ := a.mgr.CreateOrGet(msg.Chat.ID, title, playerFrom(msg.From))

	card := tgbotapi.NewMessage(msg.Chat.ID, formatLobby(g.Snapshot(), a.cfg.MinPlayers, a.cfg.MaxPlayers))
	card.ParseMode = tgbotapi.ModeHTML
	card.ReplyMarkup = lobbyKeyboard()
	if _, err := a.bot.Send(card); err != nil {
		a.log.Warn().Err(err).Msg("lobby card send failed")
	}
}

func (a *app) handleEndGame(msg *tgbotapi.Message) {
	g, ok := a.mgr.Get(msg.Chat.ID)
	if !ok {
		return
	}
	if !authorization.UserCouldModifyGame(int64(msg.From.ID), g) {
		a.reply(msg.Chat.ID, textCreatorOnly)
		return
	}
	a.mgr.Remove(msg.Chat.ID)
	a.reply(msg.Chat.ID, textGameStopped)
}

func (a *app) handleCallback(q *tgbotapi.CallbackQuery) {
	if strings.HasPrefix(q.Data, "lobby|") {
		a.handleLobbyCallback(q, strings.TrimPrefix(q.Data, "lobby|"))
		return
	}

	pc, ok := a.tokens.Get(q.Data)
	if !ok {
		a.answer(q, textStaleButton)
		return
	}
	actorID := int64(q.From.ID)

	switch {
	case (pc.Kind == game.ActionInspect || pc.Kind == game.ActionShoot) && pc.TargetID == 0:
		a.expandDetectiveMenu(q, pc, actorID)
	case pc.Kind == game.ActionVote:
		a.mgr.SubmitVote(pc.GameID, actorID, pc.TargetID)
		a.answer(q, textVoteRecorded)
	default:
		a.mgr.SubmitIntent(pc.GameID, actorID, pc.Kind, pc.TargetID)
		a.answer(q, textChoiceRecorded)
	}
}

// expandDetectiveMenu swaps the inspect/shoot menu for a target keyboard.
func (a *app) expandDetectiveMenu(q *tgbotapi.CallbackQuery, pc pendingChoice, actorID int64) {
	g, ok := a.mgr.Get(pc.GameID)
	if !ok {
		a.answer(q, textStaleButton)
		return
	}
	opts := g.TargetOptions(actorID, pc.Kind)
	if len(opts) == 0 {
		a.answer(q, textStaleButton)
		return
	}

	title := textPickInspect
	if pc.Kind == game.ActionShoot {
		title = textPickShoot
	}
	edit := tgbotapi.NewEditMessageText(q.Message.Chat.ID, q.Message.MessageID, title)
	mk := a.choicesKeyboard(pc.GameID, opts)
	edit.ReplyMarkup = &mk
	if _, err := a.bot.Send(edit); err != nil {
		a.log.Warn().Err(err).Msg("menu edit failed")
	}
	a.answer(q, "")
}

func (a *app) handleLobbyCallback(q *tgbotapi.CallbackQuery, action string) {
	chatID := q.Message.Chat.ID
	g, ok := a.mgr.Get(chatID)
	if !ok {
		a.alert(q, textLobbyNotFound)
		return
	}
	userID := int64(q.From.ID)

	var err error
	switch action {
	case "join":
		err = g.Join(playerFrom(q.From))
	case "leave":
		err = g.Leave(userID)
	case "bot":
		_, err = g.AddBot()
	case "start":
		if !authorization.UserCouldModifyGame(userID, g) {
			a.alert(q, textCreatorOnly)
			return
		}
		if err := g.Start(); err != nil {
			a.alert(q, err.Error())
			return
		}
		a.editLobbyCard(q, textGameLaunched, false)
		a.answer(q, "")
		return
	default:
		a.answer(q, textStaleButton)
		return
	}

	if err != nil {
		a.alert(q, err.Error())
		return
	}
	a.editLobbyCard(q, formatLobby(g.Snapshot(), a.cfg.MinPlayers, a.cfg.MaxPlayers), true)
	a.answer(q, "")
}

func (a *app) editLobbyCard(q *tgbotapi.CallbackQuery, text string, keyboard bool) {
	edit := tgbotapi.NewEditMessageText(q.Message.Chat.ID, q.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if keyboard {
		mk := lobbyKeyboard()
		edit.ReplyMarkup = &mk
	}
	if _, err := a.bot.Send(edit); err != nil {
		a.log.Warn().Err(err).Msg("lobby card edit failed")
	}
}

func (a *app) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := a.bot.Send(msg); err != nil {
		a.log.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}

func (a *app) answer(q *tgbotapi.CallbackQuery, text string) {
	if _, err := a.bot.AnswerCallbackQuery(tgbotapi.NewCallback(q.ID, text)); err != nil {
		a.log.Debug().Err(err).Msg("callback answer failed")
	}
}

func (a *app) alert(q *tgbotapi.CallbackQuery, text string) {
	if _, err := a.bot.AnswerCallbackQuery(tgbotapi.NewCallbackWithAlert(q.ID, text)); err != nil {
		a.log.Debug().Err(err).Msg("callback alert failed")
	}
}

func lobbyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Доєднатися", "lobby|join")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Вийти", "lobby|leave")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Додати бота", "lobby|bot")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Почати гру", "lobby|start")),
	)
}

func formatLobby(s game.Snapshot, minPlayers, maxPlayers int) string {
	var b strings.Builder
	b.WriteString("<b>Лобі мафії</b>\n")
	if len(s.Humans) == 0 {
		b.WriteString("Гравців немає\n")
	} else {
		b.WriteString("Гравці:\n")
		for _, name := range s.Humans {
			b.WriteString(fmt.Sprintf("• %s\n", name))
		}
	}
	if len(s.Bots) > 0 {
		b.WriteString("\nБоти:\n")
		for _, name := range s.Bots {
			b.WriteString(fmt.Sprintf("• %s\n", name))
		}
	}
	b.WriteString(fmt.Sprintf("\nЗареєстровано: %d/%d\n", s.Count, maxPlayers))
	b.WriteString(fmt.Sprintf("Мінімум для старту: %d", minPlayers))
	return b.String()
}

func playerFrom(u *tgbotapi.User) *game.Player {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return game.NewPlayer(int64(u.ID), u.UserName, name)
}

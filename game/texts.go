package game

// User-facing texts. Keys for GIF assets are resolved to files by the
// transport layer, a missing asset degrades to plain text.

const (
	gifNight     = "night"
	gifMorning   = "morning"
	gifVote      = "vote"
	gifDead      = "dead"
	gifLostCivil = "lost_civil"
	gifLostMafia = "lost_mafia"
)

type roleText struct {
	Title string
	Blurb string
}

var roleTexts = map[Role]roleText{
	RoleDon: {
		"Дон",
		"Ви очолюєте мафію. Оберіть жертву вночі та перехитріть мирних.",
	},
	RoleMafia: {
		"Мафія",
		"Підтримуйте дона і при потребі успадкуйте його справу. Не видавайте себе.",
	},
	RoleDoctor: {
		"Лікар",
		"Щоночі лікуйте когось. Себе можна лікувати лише один раз за гру.",
	},
	RoleDetective: {
		"Детектив Кішкель",
		"Перевіряйте підозрілих та маєте один постріл, щоб зняти маску з ворога.",
	},
	RoleCivil: {
		"Мирний",
		"Уважно слухайте містян та обирайте, кого варто вигнати з міста.",
	},
}

const (
	bannerNoKick = "Цієї ночі в місті всі залишилися живі. Перевіримо, чи так буде й надалі..."
	bannerKicked = "Цієї ночі хтось полетів у вирій. Місто ще оговтується..."
)

var morningEvents = map[string]string{
	"event_everyone_alive": "Ніч пройшла тихо. Всі жителі прокинулися!",
	"event_single_death":   "Місто прокинулося в жалобі — є жертви минулої ночі.",
	"event_both_died":      "Цієї ночі пролилася подвійна кров. Хто ж стоїть за цим?",
	"doc_saved":            "Доктор зумів зберегти життя. Але чи надовго?",
	"don_dead_no_mafia":    "Дона вбито, а сліду мафії не залишилося. Місто святкує перемогу!",
	"don_dead_mafia_alive": "Мафія залишилася сама, але продовжить справу дона...",
	"doc_dead":             "Дон забрав життя лікаря. Що робитиме місто без нього?",
	"detective_dead":       "Дон позбувся детектива. Тепер темрява стає густішою...",
	"civil_dead":           "Дон забрав життя селянина. Хай спочиває з миром...",
	"event_mafia_win":      "Мафія отримала контроль над селом та прибрала всіх зайвих.",
	"event_civil_won":      "Мафію повержено, село у спокої... Чи надовго?",
}

var actionLogLines = map[Role]string{
	RoleDon:       "Дон зробив свій вибір...",
	RoleMafia:     "Мафія підтримала рішення...",
	RoleDoctor:    "Лікар завершив лікування...",
	RoleDetective: "Детектив прийняв рішення...",
}

const (
	textGameStarted   = "Гра розпочалась! Місто засинає..."
	textPromptDon     = "Кого прибираємо цієї ночі?"
	textPromptMafia   = "Ти очолив мафію. Обери жертву"
	textPromptDoctor  = "Кого лікуємо цієї ночі?"
	textPromptDetect  = "Обери дію: перевірити чи вистрілити."
	textPromptVote    = "Кого підозрюєш?"
	textChoiceSaved   = "Вибір збережено."
	textVoteSaved     = "Ти віддав голос за %s."
	textVoteStarts    = "Починаємо голосування. %d секунд на вибір."
	textDayComes      = "День %d. Обговоріть події та готуйтеся до голосування."
	textDiedAtNight   = "%s загинув цієї ночі."
	textLynched       = "%s страчено за рішенням містян."
	textNobodyLynched = "Місто вирішило нікого не чіпати."
	textInspection    = "%s має роль %s"
	textDetectChoose  = "Перевірити"
	textDetectShoot   = "Вистрілити"
	textRoleIntro     = "Ви долучилися до гри в мафію у групі <b>%s</b>.\n\n<b>Ваша роль:</b> %s\n%s"
)

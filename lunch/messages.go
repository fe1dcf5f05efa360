package lunch

// User-facing texts. The bot speaks Ukrainian.
const (
	PollQuestion = "Обід?"
	OptionYes    = "Так"
	OptionNo     = "Ні"

	MsgFinishCurrent    = "Будь ласка, завершіть поточне голосування."
	MsgCreateFirst      = "Створіть нове опитування, використовуючи команду /lunch."
	MsgNobodyWantsToEat = "Ніхто не хоче обідати."
	MsgPriorityHeader   = "Щасливці у порядку пріоритету:"
	MsgCancelled        = "Охрана, отмєна."
)

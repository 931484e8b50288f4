package bot

// Message is one inbound chat message.
type Message struct {
	UserID int64
	ChatID int64
	Text   string
}

// Channel is the chat transport the bot core talks through.
type Channel interface {
	// FetchNewMessages drains the inbound queue without blocking.
	FetchNewMessages() ([]Message, error)
	SendText(chatID int64, text string) error
	// SendChoices shows the prompt together with quick-reply buttons.
	SendChoices(chatID int64, text string, options []string, allowMultiple, oneTime bool) error
}

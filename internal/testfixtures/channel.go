package testfixtures

import "telegram-time-tracker/internal/bot"

// SentText is one recorded SendText call.
type SentText struct {
	ChatID int64
	Text   string
}

// SentChoices is one recorded SendChoices call.
type SentChoices struct {
	ChatID  int64
	Text    string
	Options []string
}

// Channel records outbound traffic and feeds queued inbound messages.
type Channel struct {
	Inbound []bot.Message
	Texts   []SentText
	Choices []SentChoices
}

func (c *Channel) FetchNewMessages() ([]bot.Message, error) {
	msgs := c.Inbound
	c.Inbound = nil
	return msgs, nil
}

func (c *Channel) SendText(chatID int64, text string) error {
	c.Texts = append(c.Texts, SentText{ChatID: chatID, Text: text})
	return nil
}

func (c *Channel) SendChoices(chatID int64, text string, options []string, allowMultiple, oneTime bool) error {
	c.Choices = append(c.Choices, SentChoices{ChatID: chatID, Text: text, Options: options})
	return nil
}

// LastText returns the most recent plain message, or "".
func (c *Channel) LastText() string {
	if len(c.Texts) == 0 {
		return ""
	}
	return c.Texts[len(c.Texts)-1].Text
}

// LastChoices returns the most recent keyboard prompt, or nil.
func (c *Channel) LastChoices() *SentChoices {
	if len(c.Choices) == 0 {
		return nil
	}
	return &c.Choices[len(c.Choices)-1]
}

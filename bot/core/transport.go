package core

import (
	"bytes"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

// Transport is the outbound side of the chat: the relay pipeline
// only ever talks to this, which keeps it testable without telegram.
type Transport interface {
	SendText(chatID int64, text string) error
	SendChatAction(chatID int64, action string) error
	SendVideo(chatID int64, data []byte) error
	SendPhoto(chatID int64, data []byte) error
	SendAudio(chatID int64, data []byte, title string, performer string) error
}

type botTransport struct {
	bot *gotgbot.Bot
}

func NewTransport(bot *gotgbot.Bot) Transport {
	return &botTransport{bot: bot}
}

func (t *botTransport) SendText(chatID int64, text string) error {
	_, err := t.bot.SendMessage(chatID, text, nil)
	return err
}

func (t *botTransport) SendChatAction(chatID int64, action string) error {
	_, err := t.bot.SendChatAction(chatID, action, nil)
	return err
}

func (t *botTransport) SendVideo(chatID int64, data []byte) error {
	_, err := t.bot.SendVideo(
		chatID,
		gotgbot.InputFileByReader("video.mp4", bytes.NewReader(data)),
		nil,
	)
	return err
}

func (t *botTransport) SendPhoto(chatID int64, data []byte) error {
	_, err := t.bot.SendPhoto(
		chatID,
		gotgbot.InputFileByReader("photo.jpg", bytes.NewReader(data)),
		nil,
	)
	return err
}

func (t *botTransport) SendAudio(
	chatID int64,
	data []byte,
	title string,
	performer string,
) error {
	_, err := t.bot.SendAudio(
		chatID,
		gotgbot.InputFileByReader("audio.mp3", bytes.NewReader(data)),
		&gotgbot.SendAudioOpts{
			Title:     title,
			Performer: performer,
		},
	)
	return err
}

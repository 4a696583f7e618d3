package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const defaultAPIBase = "https://api.telegram.org"

// Bot is a thin client over the Telegram Bot API. Only the three methods the
// tracker needs are wrapped.
type Bot struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		baseURL:    defaultAPIBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewBotWithBase points the client at a different API host. Tests use it.
func NewBotWithBase(token, baseURL string) *Bot {
	bot := NewBot(token)
	bot.baseURL = baseURL
	return bot
}

func (b *Bot) apiURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", b.baseURL, b.token, method)
}

func (b *Bot) call(ctx context.Context, method string, body map[string]any) error {
	buf, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		return errors.New("encoding telegram request error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL(method), bytes.NewReader(buf))
	if err != nil {
		return errors.New("building telegram request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return errors.New("telegram request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}
	return nil
}

func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	body := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if keyboard != nil {
		body["reply_markup"] = keyboard
	}
	return b.call(ctx, "sendMessage", body)
}

func (b *Bot) EditMessageText(ctx context.Context, chatID, messageID int64, text string, keyboard *InlineKeyboardMarkup) error {
	body := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if keyboard != nil {
		body["reply_markup"] = keyboard
	}
	return b.call(ctx, "editMessageText", body)
}

func (b *Bot) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	return b.call(ctx, "answerCallbackQuery", map[string]any{
		"callback_query_id": callbackID,
		"text":              text,
		"show_alert":        showAlert,
	})
}

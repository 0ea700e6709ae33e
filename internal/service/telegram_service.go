package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paramountfood/paramount/internal/models"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramService handles sending messages to Telegram
type TelegramService struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service
func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  telegramAPIBase,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (s *TelegramService) Channel() string {
	return ChannelTelegram
}

// NotifyInquiry sends a contact inquiry to the configured Telegram chat
func (s *TelegramService) NotifyInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if s.botToken == "" || s.chatID == "" {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	text := fmt.Sprintf(
		"🆕 <b>New Inquiry: %s</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Message:</b>\n%s\n\n"+
			"<i>Ref %s</i>",
		escapeHTML(inquiry.Subject),
		escapeHTML(inquiry.Name),
		escapeHTML(inquiry.Email),
		escapeHTML(inquiry.Message),
		inquiry.ID,
	)

	jsonData, err := json.Marshal(telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes HTML special characters for Telegram
func escapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

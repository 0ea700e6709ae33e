package service

import (
	"context"

	"github.com/paramountfood/paramount/internal/config"
	"github.com/paramountfood/paramount/internal/logging"
	"github.com/paramountfood/paramount/internal/models"
)

// Notification channel names
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
	ChannelSlack    = "slack"
)

// InquiryNotifier announces a stored inquiry to staff
type InquiryNotifier interface {
	Channel() string
	NotifyInquiry(ctx context.Context, inquiry *models.Inquiry) error
}

// NotificationDispatcher fans an inquiry out to every configured channel.
// A failing channel is logged and skipped; it never fails the submission.
type NotificationDispatcher struct {
	notifiers []InquiryNotifier
	logger    *logging.Logger
}

// NewNotificationDispatcher creates a dispatcher over the given notifiers
func NewNotificationDispatcher(notifiers ...InquiryNotifier) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifiers: notifiers,
		logger:    logging.GetGlobalLogger(),
	}
}

// NewNotificationDispatcherFromConfig enables each channel whose credentials are set
func NewNotificationDispatcherFromConfig(cfg config.NotifyConfig) *NotificationDispatcher {
	logger := logging.GetGlobalLogger()
	var notifiers []InquiryNotifier

	if cfg.SMTPUser != "" && cfg.SMTPPassword != "" {
		notifiers = append(notifiers, NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.RecipientEmail))
	} else {
		logger.Warn("SMTP credentials not configured. Email notification disabled.")
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifiers = append(notifiers, NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID))
	}

	if cfg.SlackWebhookURL != "" {
		notifiers = append(notifiers, NewSlackService(cfg.SlackWebhookURL))
	}

	return NewNotificationDispatcher(notifiers...)
}

// Channels lists the enabled channel names
func (d *NotificationDispatcher) Channels() []string {
	channels := make([]string, 0, len(d.notifiers))
	for _, n := range d.notifiers {
		channels = append(channels, n.Channel())
	}
	return channels
}

// Dispatch sends the inquiry to every channel and returns those that delivered it
func (d *NotificationDispatcher) Dispatch(ctx context.Context, inquiry *models.Inquiry) []string {
	delivered := []string{}
	for _, n := range d.notifiers {
		if err := n.NotifyInquiry(ctx, inquiry); err != nil {
			d.logger.Error("[notify:%s] inquiry %s not delivered: %v", n.Channel(), inquiry.ID, err)
			continue
		}
		d.logger.Info("[notify:%s] inquiry %s delivered", n.Channel(), inquiry.ID)
		delivered = append(delivered, n.Channel())
	}
	return delivered
}

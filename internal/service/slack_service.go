package service

import (
	"context"
	"fmt"

	"github.com/paramountfood/paramount/internal/models"
	"github.com/slack-go/slack"
)

// SlackService posts inquiry notifications to a Slack incoming webhook
type SlackService struct {
	webhookURL string
}

// NewSlackService creates a new Slack notifier
func NewSlackService(webhookURL string) *SlackService {
	return &SlackService{webhookURL: webhookURL}
}

func (s *SlackService) Channel() string {
	return ChannelSlack
}

// NotifyInquiry posts a summary of the inquiry to Slack
func (s *SlackService) NotifyInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("New inquiry from %s <%s>: %s", inquiry.Name, inquiry.Email, inquiry.Subject),
		Attachments: []slack.Attachment{
			{
				Color: "#800000",
				Title: inquiry.Subject,
				Text:  inquiry.Message,
				Fields: []slack.AttachmentField{
					{Title: "Name", Value: inquiry.Name, Short: true},
					{Title: "Email", Value: inquiry.Email, Short: true},
					{Title: "Reference", Value: inquiry.ID},
				},
				Footer: "Paramount Food Corporation contact form",
			},
		},
	}

	if err := slack.PostWebhookContext(ctx, s.webhookURL, msg); err != nil {
		return fmt.Errorf("failed to post slack webhook: %w", err)
	}
	return nil
}

// Package slack implements the notify.Notifier for Slack via the Web API.
package slack

import (
	"context"
	"fmt"

	"github.com/chantierhq/chantier/internal/notify"
	slackapi "github.com/slack-go/slack"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Notifier posts events to a Slack channel.
type Notifier struct {
	client    slackClient
	channelID string
}

// Opts holds parameters for creating a Slack Notifier.
type Opts struct {
	BotToken  string // xoxb-... Slack bot token
	ChannelID string // channel to post to
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// New creates a Slack Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("slack: channel ID is required")
	}
	client := opts.Client
	if client == nil {
		if opts.BotToken == "" {
			return nil, fmt.Errorf("slack: bot token is required")
		}
		client = slackapi.New(opts.BotToken)
	}
	return &Notifier{client: client, channelID: opts.ChannelID}, nil
}

// Send posts the event as an attachment with a severity-colored sidebar.
func (n *Notifier) Send(ctx context.Context, ev notify.Event) error {
	fields := make([]slackapi.AttachmentField, 0, len(ev.Fields))
	for _, f := range ev.Fields {
		fields = append(fields, slackapi.AttachmentField{
			Title: f.Name,
			Value: f.Value,
			Short: true,
		})
	}
	attachment := slackapi.Attachment{
		Title:  ev.Title,
		Text:   ev.Body,
		Color:  notify.SeverityColor(ev.Severity),
		Fields: fields,
	}

	_, _, err := n.client.PostMessageContext(ctx, n.channelID, slackapi.MsgOptionAttachments(attachment))
	if err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	return nil
}

// Close is a no-op; the Web API client holds no connection.
func (n *Notifier) Close() error {
	return nil
}

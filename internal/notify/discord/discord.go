// Package discord implements the notify.Notifier for Discord.
package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/chantierhq/chantier/internal/notify"
)

// session abstracts the discordgo.Session methods we use, enabling test mocks.
type session interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	Close() error
}

// Notifier posts events to a Discord channel.
type Notifier struct {
	sess      session
	channelID string
}

// Opts holds parameters for creating a Discord Notifier.
type Opts struct {
	BotToken  string // Discord bot token
	ChannelID string // channel to post to
	// For testing: inject a mock session instead of the real Discord API.
	Session session
}

// New creates a Discord Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel ID is required")
	}
	sess := opts.Session
	if sess == nil {
		if opts.BotToken == "" {
			return nil, fmt.Errorf("discord: bot token is required")
		}
		s, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		sess = s
	}
	return &Notifier{sess: sess, channelID: opts.ChannelID}, nil
}

// Send posts the event as an embed with a severity-colored stripe.
func (n *Notifier) Send(ctx context.Context, ev notify.Event) error {
	fields := make([]*discordgo.MessageEmbedField, 0, len(ev.Fields))
	for _, f := range ev.Fields {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: true,
		})
	}
	embed := &discordgo.MessageEmbed{
		Title:       ev.Title,
		Description: ev.Body,
		Color:       hexColor(notify.SeverityColor(ev.Severity)),
		Fields:      fields,
	}

	if _, err := n.sess.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send embed: %w", err)
	}
	return nil
}

// Close shuts down the underlying session.
func (n *Notifier) Close() error {
	return n.sess.Close()
}

// hexColor converts "#rrggbb" to the integer form Discord embeds use.
func hexColor(c string) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(c, "#"), 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

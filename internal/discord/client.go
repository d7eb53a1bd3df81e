package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/rayprastya/stop-playing/internal/domain/entity"
)

// Client adapts a discordgo session to the notifier and voice-gateway
// contracts for a single guild.
type Client struct {
	session   *discordgo.Session
	guildID   string
	channelID string // resolved lazily when not configured
}

func NewClient(session *discordgo.Session, guildID, channelID string) *Client {
	return &Client{
		session:   session,
		guildID:   guildID,
		channelID: channelID,
	}
}

// Notify sends the text to the notification channel as a mention of the user
func (c *Client) Notify(userID, text string) error {
	channelID, err := c.notifyChannel()
	if err != nil {
		return fmt.Errorf("failed to resolve notification channel: %w", err)
	}

	if _, err := c.session.ChannelMessageSend(channelID, fmt.Sprintf("<@%s> %s", userID, text)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (c *Client) notifyChannel() (string, error) {
	if c.channelID != "" {
		return c.channelID, nil
	}

	guild, err := c.session.Guild(c.guildID)
	if err != nil {
		return "", err
	}
	if guild.SystemChannelID == "" {
		return "", fmt.Errorf("guild %s has no system channel and NOTIFY_CHANNEL_ID is not set", c.guildID)
	}

	c.channelID = guild.SystemChannelID
	return c.channelID, nil
}

// ResolveMember fetches the guild member and their voice presence.
// Returns nil, nil when the user is not in the guild.
func (c *Client) ResolveMember(userID string) (*entity.Member, error) {
	member, err := c.session.GuildMember(c.guildID, userID)
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &entity.Member{
		UserID:   userID,
		Username: member.User.Username,
		InVoice:  c.inVoice(userID),
	}, nil
}

// inVoice reads gateway state; requires the guild voice-state intent
func (c *Client) inVoice(userID string) bool {
	guild, err := c.session.State.Guild(c.guildID)
	if err != nil {
		return false
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID != ""
		}
	}
	return false
}

// Disconnect moves the member out of voice. Discord treats a nil target
// channel as a disconnect.
func (c *Client) Disconnect(userID string) error {
	if err := c.session.GuildMemberMove(c.guildID, userID, nil); err != nil {
		return fmt.Errorf("failed to disconnect member: %w", err)
	}
	return nil
}

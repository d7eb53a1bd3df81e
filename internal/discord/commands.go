package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "main",
		Description: "Schedule your daily voice auto-disconnect",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Time you want to be disconnected, in your local clock (HH:MM)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "current_time",
				Description: "Your current local time (HH:MM), used to detect your timezone",
				Required:    true,
			},
		},
	},
	{
		Name:        "timeleft",
		Description: "How long until your auto-disconnect",
	},
}

// RegisterCommands overwrites the guild's slash commands with this bot's
// set. Guild-scoped so changes apply immediately.
func (c *Client) RegisterCommands() error {
	appID := c.session.State.User.ID
	if _, err := c.session.ApplicationCommandBulkOverwrite(appID, c.guildID, commands); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

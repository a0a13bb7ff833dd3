package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/dicebot/internal/services/bot/i18n"
)

// Ping answers "Pong!".
type Ping struct{}

// Definition implements Command.
func (Ping) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "ping",
		Description:              i18n.Printer("").Sprintf(i18n.KeyPingDescription),
		DescriptionLocalizations: localizations(i18n.KeyPingDescription),
	}
}

// Execute implements Command.
func (Ping) Execute(ctx context.Context, inv Invocation) error {
	return inv.Respond.Reply(ctx, i18n.Printer(inv.Locale).Sprintf(i18n.KeyPong))
}

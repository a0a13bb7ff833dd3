package commands

import (
	"context"
	"errors"
	"log"
	"strconv"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/dicebot/internal/services/bot/i18n"
	"github.com/louisbranch/dicebot/internal/services/bot/integration"
)

// EmojifyLimit is the longest message, in characters, the emojify command
// accepts.
const EmojifyLimit = 2000

// Emojifier decorates text with emojis.
type Emojifier interface {
	Emojify(ctx context.Context, input string) (string, error)
}

// Emojify sends a message to the emojify service and replies with its output.
type Emojify struct {
	emojifier Emojifier
}

// NewEmojify builds the emojify command.
func NewEmojify(emojifier Emojifier) *Emojify {
	return &Emojify{emojifier: emojifier}
}

// Definition implements Command.
func (e *Emojify) Definition() *discordgo.ApplicationCommand {
	printer := i18n.Printer("")
	limit := strconv.Itoa(EmojifyLimit)
	return &discordgo.ApplicationCommand{
		Name:                     "emojify",
		Description:              printer.Sprintf(i18n.KeyEmojifyDesc),
		DescriptionLocalizations: localizations(i18n.KeyEmojifyDesc),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     "message",
				Description:              printer.Sprintf(i18n.KeyEmojifyMessage, limit),
				DescriptionLocalizations: i18n.Localizations(i18n.KeyEmojifyMessage, limit),
				Required:                 true,
			},
		},
	}
}

// Execute implements Command.
func (e *Emojify) Execute(ctx context.Context, inv Invocation) error {
	if err := inv.Respond.Defer(ctx); err != nil {
		return err
	}
	printer := i18n.Printer(inv.Locale)

	input := inv.String("message")
	if input == "" {
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyEmojifyEmpty))
	}
	if utf8.RuneCountInString(input) > EmojifyLimit {
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyEmojifyTooLong, strconv.Itoa(EmojifyLimit)))
	}
	if e.emojifier == nil {
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyEmojifyFailed))
	}

	output, err := e.emojifier.Emojify(ctx, input)
	if err != nil {
		var payloadErr *integration.PayloadError
		if errors.As(err, &payloadErr) {
			return inv.Respond.EditReply(ctx, payloadErr.Message)
		}
		log.Printf("emojify: %v", err)
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyEmojifyFailed))
	}
	return inv.Respond.EditReply(ctx, output)
}

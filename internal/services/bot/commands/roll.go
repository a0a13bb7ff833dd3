package commands

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/services/bot/i18n"
)

// DefaultRollMaxTimes caps the times option when no limit is configured.
const DefaultRollMaxTimes = 10

// DiceRoller evaluates parsed dice groups.
type DiceRoller interface {
	Roll(ctx context.Context, groups []dice.Group, times int, locale string) ([]dice.Result, error)
}

// Roll parses a dice expression and replies with the rolled outcome.
type Roll struct {
	roller   DiceRoller
	maxTimes int
}

// NewRoll builds the roll command. maxTimes <= 0 uses DefaultRollMaxTimes.
func NewRoll(roller DiceRoller, maxTimes int) *Roll {
	if maxTimes <= 0 {
		maxTimes = DefaultRollMaxTimes
	}
	return &Roll{roller: roller, maxTimes: maxTimes}
}

// Definition implements Command.
func (r *Roll) Definition() *discordgo.ApplicationCommand {
	printer := i18n.Printer("")
	minTimes := 1.0
	return &discordgo.ApplicationCommand{
		Name:                     "roll",
		Description:              printer.Sprintf(i18n.KeyRollDescription),
		DescriptionLocalizations: localizations(i18n.KeyRollDescription),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     "text",
				Description:              printer.Sprintf(i18n.KeyRollText),
				DescriptionLocalizations: i18n.Localizations(i18n.KeyRollText),
				Required:                 true,
			},
			{
				Type:                     discordgo.ApplicationCommandOptionInteger,
				Name:                     "times",
				Description:              printer.Sprintf(i18n.KeyRollTimes),
				DescriptionLocalizations: i18n.Localizations(i18n.KeyRollTimes),
				MinValue:                 &minTimes,
				MaxValue:                 float64(r.maxTimes),
			},
		},
	}
}

// Execute implements Command.
func (r *Roll) Execute(ctx context.Context, inv Invocation) error {
	if err := inv.Respond.Defer(ctx); err != nil {
		return err
	}
	printer := i18n.Printer(inv.Locale)

	groups, err := dice.ParseNotation(dice.Normalize(inv.String("text")))
	switch {
	case errors.Is(err, dice.ErrEmptyInput):
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyRollEmpty))
	case err != nil:
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyRollInvalid))
	}

	times := inv.Int("times", 1)
	if times < 1 || times > r.maxTimes {
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyRollInvalid))
	}

	if r.roller == nil {
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyRollFailed))
	}
	results, err := r.roller.Roll(ctx, groups, times, inv.Locale)
	if err == nil {
		err = dice.ValidateResults(groups, times, results)
	}
	if err != nil {
		log.Printf("roll %q: %v", inv.String("text"), err)
		return inv.Respond.EditReply(ctx, printer.Sprintf(i18n.KeyRollFailed))
	}

	lines := make([]string, 0, len(results))
	for _, result := range results {
		lines = append(lines, dice.FormatResult(result))
	}
	return inv.Respond.EditReply(ctx, fitMessage(lines, func(omitted int) string {
		return printer.Sprintf(i18n.KeyRollTruncated, strconv.Itoa(omitted))
	}))
}

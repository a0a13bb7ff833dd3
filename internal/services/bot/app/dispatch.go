package app

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/dicebot/internal/services/bot/commands"
	"github.com/louisbranch/dicebot/internal/services/bot/i18n"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/dicebot/internal/services/bot/app"

// Dispatcher routes slash command interactions to registered commands.
type Dispatcher struct {
	registry *commands.Registry
	session  Session
	tracer   trace.Tracer
}

// NewDispatcher builds a dispatcher answering through session.
func NewDispatcher(registry *commands.Registry, session Session) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		session:  session,
		tracer:   otel.Tracer(tracerName),
	}
}

// Handle executes the command named by interaction. Non-command interactions
// and unregistered names are ignored.
func (d *Dispatcher) Handle(ctx context.Context, interaction *discordgo.Interaction) {
	if interaction == nil || interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := interaction.ApplicationCommandData()
	cmd, ok := d.registry.Lookup(data.Name)
	if !ok {
		log.Printf("unregistered command %q", data.Name)
		return
	}

	ctx, span := d.tracer.Start(ctx, "command."+data.Name, trace.WithAttributes(
		attribute.String("discord.command", data.Name),
		attribute.String("discord.locale", string(interaction.Locale)),
	))
	defer span.End()

	responder := newResponder(d.session, interaction)
	inv := commands.Invocation{
		Name:    data.Name,
		Locale:  string(interaction.Locale),
		Options: commands.OptionMap(data.Options),
		Respond: responder,
	}
	err := cmd.Execute(ctx, inv)
	if err == nil {
		return
	}

	log.Printf("execute command %s: %v", data.Name, err)
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	if err := responder.fail(ctx, i18n.Printer(inv.Locale).Sprintf(i18n.KeyCommandFailed)); err != nil {
		log.Printf("report failure for command %s: %v", data.Name, err)
	}
}

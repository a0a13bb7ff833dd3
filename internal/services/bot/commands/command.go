// Package commands implements the bot's slash commands and the registry the
// runtime dispatches through.
package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/dicebot/internal/services/bot/i18n"
)

// MessageLimit is the longest content, in characters, Discord accepts in a
// single message.
const MessageLimit = 2000

// Responder delivers a command's reply for one interaction.
type Responder interface {
	// Reply answers the interaction immediately.
	Reply(ctx context.Context, content string) error
	// Defer acknowledges the interaction; the answer follows via EditReply.
	Defer(ctx context.Context) error
	// EditReply replaces the deferred or sent reply.
	EditReply(ctx context.Context, content string) error
}

// Invocation is one slash command call.
type Invocation struct {
	Name    string
	Locale  string
	Options map[string]*discordgo.ApplicationCommandInteractionDataOption
	Respond Responder
}

// String returns the string option name, or "" when absent.
func (inv Invocation) String(name string) string {
	opt, ok := inv.Options[name]
	if !ok || opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// Int returns the integer option name, or fallback when absent.
func (inv Invocation) Int(name string, fallback int) int {
	opt, ok := inv.Options[name]
	if !ok || opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return fallback
	}
	return int(opt.IntValue())
}

// Command is a slash command the bot can register and execute.
type Command interface {
	// Definition describes the command for registration.
	Definition() *discordgo.ApplicationCommand
	// Execute handles one invocation. A returned error means no usable
	// reply was delivered.
	Execute(ctx context.Context, inv Invocation) error
}

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

// NewRegistry registers cmds by their definition name.
func NewRegistry(cmds ...Command) (*Registry, error) {
	registry := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		if cmd == nil || cmd.Definition() == nil {
			return nil, fmt.Errorf("command definition is required")
		}
		name := strings.TrimSpace(cmd.Definition().Name)
		if name == "" {
			return nil, fmt.Errorf("command name is required")
		}
		if _, exists := registry.commands[name]; exists {
			return nil, fmt.Errorf("command %q registered twice", name)
		}
		registry.commands[name] = cmd
	}
	return registry, nil
}

// Lookup returns the command registered as name.
func (r *Registry) Lookup(name string) (Command, bool) {
	if r == nil {
		return nil, false
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names lists registered command names in order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns every command definition ordered by name.
func (r *Registry) Definitions() []*discordgo.ApplicationCommand {
	names := r.Names()
	defs := make([]*discordgo.ApplicationCommand, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.commands[name].Definition())
	}
	return defs
}

// OptionMap indexes interaction options by name.
func OptionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		if opt != nil {
			out[opt.Name] = opt
		}
	}
	return out
}

func localizations(key string, args ...any) *map[discordgo.Locale]string {
	values := i18n.Localizations(key, args...)
	return &values
}

// fitMessage joins lines with newlines. When the result is longer than
// MessageLimit, trailing lines are dropped and replaced by more(n), n being
// the number of lines left out. A first line that cannot fit on its own is
// cut short.
func fitMessage(lines []string, more func(omitted int) string) string {
	joined := strings.Join(lines, "\n")
	if utf8.RuneCountInString(joined) <= MessageLimit {
		return joined
	}
	for kept := len(lines) - 1; kept > 0; kept-- {
		content := strings.Join(lines[:kept], "\n") + "\n" + more(len(lines)-kept)
		if utf8.RuneCountInString(content) <= MessageLimit {
			return content
		}
	}
	const ellipsis = "..."
	first := []rune(lines[0])
	return string(first[:MessageLimit-len(ellipsis)]) + ellipsis
}

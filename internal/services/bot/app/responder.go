package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Session is the subset of *discordgo.Session the bot answers through.
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// interactionResponder answers one interaction and remembers whether it was
// acknowledged.
type interactionResponder struct {
	session     Session
	interaction *discordgo.Interaction

	mu       sync.Mutex
	replied  bool
	deferred bool
}

func newResponder(session Session, interaction *discordgo.Interaction) *interactionResponder {
	return &interactionResponder{session: session, interaction: interaction}
}

func (r *interactionResponder) Reply(ctx context.Context, content string) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	r.mu.Lock()
	r.replied = true
	r.mu.Unlock()
	return nil
}

func (r *interactionResponder) Defer(ctx context.Context) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("defer reply: %w", err)
	}
	r.mu.Lock()
	r.deferred = true
	r.mu.Unlock()
	return nil
}

func (r *interactionResponder) EditReply(ctx context.Context, content string) error {
	if _, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{Content: &content}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit reply: %w", err)
	}
	r.mu.Lock()
	r.replied = true
	r.mu.Unlock()
	return nil
}

// acknowledged reports whether the interaction was replied to or deferred.
func (r *interactionResponder) acknowledged() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replied || r.deferred
}

// fail sends an ephemeral message: a follow-up once the interaction is
// acknowledged, the initial reply otherwise.
func (r *interactionResponder) fail(ctx context.Context, content string) error {
	if r.acknowledged() {
		_, err := r.session.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("follow up: %w", err)
		}
		return nil
	}
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	return nil
}

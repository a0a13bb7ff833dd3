// Package i18n holds the bot's user-facing copy per locale.
package i18n

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys resolved through Printer.
const (
	KeyPong            = "ping.pong"
	KeyPingDescription = "ping.description"
	KeyRollEmpty       = "roll.empty"
	KeyRollInvalid     = "roll.invalid"
	KeyRollFailed      = "roll.failed"
	KeyRollDescription = "roll.description"
	KeyRollText        = "roll.option.text"
	KeyRollTimes       = "roll.option.times"
	KeyRollTruncated   = "roll.truncated"
	KeyEmojifyEmpty    = "emojify.empty"
	KeyEmojifyTooLong  = "emojify.too_long"
	KeyEmojifyFailed   = "emojify.failed"
	KeyEmojifyDesc     = "emojify.description"
	KeyEmojifyMessage  = "emojify.option.message"
	KeyCommandFailed   = "command.failed"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		KeyPong:            "Pong!",
		KeyRollEmpty:       "No roll provided",
		KeyRollInvalid:     "I don't know how to roll that...",
		KeyRollFailed:      "Something went wrong while rolling the dice",
		KeyEmojifyEmpty:    "Nothing to emojify :-(",
		KeyEmojifyTooLong:  "That message is too big! (Limit: %s characters)",
		KeyEmojifyFailed:   "Something went wrong while attempting to build the emojified message",
		KeyCommandFailed:   "There was an error while executing this command!",
		KeyPingDescription: "Replies with Pong!",
		KeyRollDescription: "Roll a specified set of dice.",
		KeyRollText:        "Ex: 1d20 + 1d4 + 1d10 + 2",
		KeyRollTimes:       "How many times to repeat the roll.",
		KeyRollTruncated:   "...and %s more rolls",
		KeyEmojifyDesc:     "Spice up a message with emojis.",
		KeyEmojifyMessage:  "This is where you put the message you want to emojify (limit %s characters).",
	},
	language.BrazilianPortuguese: {
		KeyPong:            "Pong!",
		KeyRollEmpty:       "Nenhuma rolagem informada",
		KeyRollInvalid:     "Não sei como rolar isso...",
		KeyRollFailed:      "Algo deu errado ao rolar os dados",
		KeyEmojifyEmpty:    "Nada para emojificar :-(",
		KeyEmojifyTooLong:  "Essa mensagem é grande demais! (Limite: %s caracteres)",
		KeyEmojifyFailed:   "Algo deu errado ao montar a mensagem emojificada",
		KeyCommandFailed:   "Ocorreu um erro ao executar este comando!",
		KeyPingDescription: "Responde com Pong!",
		KeyRollDescription: "Rola um conjunto de dados.",
		KeyRollText:        "Ex: 1d20 + 1d4 + 1d10 + 2",
		KeyRollTimes:       "Quantas vezes repetir a rolagem.",
		KeyRollTruncated:   "...e mais %s rolagens",
		KeyEmojifyDesc:     "Tempera uma mensagem com emojis.",
		KeyEmojifyMessage:  "Coloque aqui a mensagem que você quer emojificar (limite de %s caracteres).",
	},
}

var builder = newBuilder()

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Default returns the locale used when the interaction carries none.
func Default() language.Tag {
	return language.AmericanEnglish
}

// Supported returns the locales the bot has copy for.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// ResolveTag maps a Discord locale such as "pt-BR" or "en-GB" to the closest
// supported tag.
func ResolveTag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// Printer returns a printer bound to the bot catalog for locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(ResolveTag(locale), message.Catalog(builder))
}

// Localizations returns the translation of key for every supported locale
// other than the default, keyed by Discord locale code.
func Localizations(key string, args ...any) map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string, len(supported)-1)
	for _, tag := range supported[1:] {
		out[discordgo.Locale(tag.String())] = message.NewPrinter(tag, message.Catalog(builder)).Sprintf(key, args...)
	}
	return out
}

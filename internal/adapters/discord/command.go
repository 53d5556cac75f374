package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	languageCommandName = "translate-language"
	languageOptionName  = "language"
)

// Locales the command descriptions are published in, besides the default one.
var commandLocales = map[discordgo.Locale]string{
	discordgo.French:           "fr",
	discordgo.German:           "de",
	discordgo.SpanishES:        "es",
	discordgo.Locale("es-419"): "es",
}

// Commands lists the application commands to register. The language command
// only exists when preferences can be stored.
func (h *Handler) Commands(translateName string) []*discordgo.ApplicationCommand {
	commands := []*discordgo.ApplicationCommand{
		{Name: translateName, Type: discordgo.MessageApplicationCommand},
	}
	if h.preferenceUseCase == nil || !h.preferenceUseCase.Enabled() {
		return commands
	}

	descriptions := h.localizations("command.language.description")
	return append(commands, &discordgo.ApplicationCommand{
		Name:                     languageCommandName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              h.t(h.defaultLocale, "command.language.description", nil),
		DescriptionLocalizations: &descriptions,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     languageOptionName,
				Description:              h.t(h.defaultLocale, "command.language.option", nil),
				DescriptionLocalizations: h.localizations("command.language.option"),
				Autocomplete:             true,
			},
		},
	})
}

func (h *Handler) localizations(key string) map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string, len(commandLocales))
	for discordLocale, locale := range commandLocales {
		out[discordLocale] = h.t(locale, key, nil)
	}
	return out
}

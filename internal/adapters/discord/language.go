package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/language"
	pkgdiscord "deeplbot/pkg/discord"
)

const (
	autoChoice = "auto"
	maxChoices = 25
)

// HandleLanguageCommand shows, stores or clears the invoking user's target
// language. Without a value it shows the current preference.
func (h *Handler) HandleLanguageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if !h.preferenceUseCase.Enabled() {
		respondEphemeral(s, i.Interaction, h.t(locale, "preference.unavailable", nil))
		return
	}

	ctx := context.Background()
	userID := interactionUserID(i.Interaction)
	value := strings.TrimSpace(optionString(i.ApplicationCommandData().Options, languageOptionName))

	switch {
	case value == "":
		code, err := h.preferenceUseCase.Get(ctx, userID)
		if err != nil {
			respondEphemeral(s, i.Interaction, h.preferenceError(locale, err))
			return
		}
		respondEphemeral(s, i.Interaction, h.t(locale, "preference.current", map[string]any{"Language": language.DisplayName(code)}))
	case strings.EqualFold(value, autoChoice):
		if err := h.preferenceUseCase.Clear(ctx, userID); err != nil {
			respondEphemeral(s, i.Interaction, h.preferenceError(locale, err))
			return
		}
		respondEphemeral(s, i.Interaction, h.t(locale, "preference.cleared", nil))
	default:
		code, err := h.preferenceUseCase.Set(ctx, userID, value)
		if err != nil {
			respondEphemeral(s, i.Interaction, h.preferenceError(locale, err))
			return
		}
		respondEphemeral(s, i.Interaction, h.t(locale, "preference.set", map[string]any{"Language": language.DisplayName(code)}))
	}
}

// preferenceError logs unexpected failures and picks the user-facing message.
func (h *Handler) preferenceError(locale string, err error) string {
	if domain.Code(err) == "" {
		log.Printf("❌ Erreur lors de la mise à jour de la préférence de langue: %v", err)
	}
	return h.t(locale, pkgdiscord.DomainErrorMessageKey(err), nil)
}

// HandleLanguageAutocomplete suggests target languages matching what the user typed.
func (h *Handler) HandleLanguageAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	query := focusedValue(i.ApplicationCommandData().Options)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: languageChoices(query, maxChoices),
		},
	}); err != nil {
		log.Printf("❌ Erreur lors de l'autocomplétion des langues: %v", err)
	}
}

// languageChoices lists "auto" then the targets whose code or name contains query.
func languageChoices(query string, limit int) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.ToLower(strings.TrimSpace(query))
	var choices []*discordgo.ApplicationCommandOptionChoice
	if strings.HasPrefix(autoChoice, query) {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  "auto (Discord language)",
			Value: autoChoice,
		})
	}
	for _, code := range language.Targets() {
		if len(choices) >= limit {
			break
		}
		name := language.DisplayName(code)
		if query != "" &&
			!strings.Contains(strings.ToLower(code), query) &&
			!strings.Contains(strings.ToLower(name), query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", name, code),
			Value: code,
		})
	}
	return choices
}

func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

func focusedValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			if v, ok := opt.Value.(string); ok {
				return v
			}
		}
	}
	return ""
}

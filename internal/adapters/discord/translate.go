package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"deeplbot/internal/domain"
	"deeplbot/internal/ports/input"
	pkgdiscord "deeplbot/pkg/discord"
)

// HandleTranslate runs the "translate this message" context-menu command.
// The reply is always ephemeral and only the deferred response is edited.
func (h *Handler) HandleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if err := deferEphemeral(s, i.Interaction); err != nil {
		log.Printf("❌ Erreur lors du report de la réponse: %v", err)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panique pendant la traduction: %v", r)
			editContent(s, i.Interaction, h.t(locale, pkgdiscord.FailedMessageKey, nil))
		}
	}()

	data := i.ApplicationCommandData()
	msg := targetMessage(data)
	if msg == nil {
		log.Printf("⚠️ Message cible %s introuvable dans l'interaction", data.TargetID)
		editContent(s, i.Interaction, h.t(locale, pkgdiscord.FailedMessageKey, nil))
		return
	}

	reply, err := h.translationUseCase.TranslateMessage(context.Background(), input.TranslateRequest{
		UserID:  interactionUserID(i.Interaction),
		Locale:  locale,
		Message: messageSource(msg, data.Resolved),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNoTranslatableContent) {
			log.Printf("❌ Erreur lors de la traduction du message %s: %v", msg.ID, err)
		}
		editContent(s, i.Interaction, h.t(locale, pkgdiscord.DomainErrorMessageKey(err), nil))
		return
	}

	for _, embed := range reply.Embeds {
		pkgdiscord.ClampEmbed(embed)
	}
	groups := pkgdiscord.SplitEmbeds(reply.Embeds)
	if len(groups) == 0 {
		editContent(s, i.Interaction, h.t(locale, pkgdiscord.FailedMessageKey, nil))
		return
	}
	if len(groups) > 1 {
		log.Printf("⚠️ %d embeds traduits, envoi en %d messages", len(reply.Embeds), len(groups))
	}

	sent, err := sendEmbeds(s, i.Interaction, groups)
	if err != nil {
		log.Printf("❌ Erreur lors de l'envoi de la traduction (%d/%d messages envoyés): %v", sent, len(groups), err)
		notice := h.t(locale, pkgdiscord.FailedMessageKey, nil)
		if sent == 0 {
			editContent(s, i.Interaction, notice)
		} else {
			followupContent(s, i.Interaction, notice)
		}
	}
}

package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "deeplbot/pkg/discord"
)

const avatarSize = "128"

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if member != nil && member.User != nil && user == nil {
		user = member.User
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// interactionUserID returns the invoking user, in a guild or in DMs.
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// targetMessage returns the message a message command was invoked on.
func targetMessage(data discordgo.ApplicationCommandInteractionData) *discordgo.Message {
	if data.Resolved == nil || data.Resolved.Messages == nil {
		return nil
	}
	return data.Resolved.Messages[data.TargetID]
}

// messageSource turns a Discord message into the translation input. The author's
// guild member is taken from the message, then from the resolved members.
func messageSource(msg *discordgo.Message, resolved *discordgo.ApplicationCommandInteractionDataResolved) pkgdiscord.Source {
	src := pkgdiscord.Source{
		Content: msg.Content,
		Embeds:  msg.Embeds,
	}
	if msg.Author == nil {
		return src
	}

	member := msg.Member
	if member == nil && resolved != nil && resolved.Members != nil {
		member = resolved.Members[msg.Author.ID]
	}
	src.AuthorName = resolveDisplayName(member, msg.Author)
	src.AuthorAvatarURL = msg.Author.AvatarURL(avatarSize)
	return src
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Printf("❌ Erreur lors de la réponse à l'interaction: %v", err)
	}
}

func deferEphemeral(s *discordgo.Session, i *discordgo.Interaction) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// editContent replaces the deferred reply with a plain text message.
func editContent(s *discordgo.Session, i *discordgo.Interaction, content string) {
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Printf("❌ Erreur lors de la modification de la réponse: %v", err)
	}
}

// followupContent posts an ephemeral plain text follow-up.
func followupContent(s *discordgo.Session, i *discordgo.Interaction, content string) {
	if _, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.Printf("❌ Erreur lors de l'envoi du message de suivi: %v", err)
	}
}

// sendEmbeds edits the deferred reply with the first group of embeds and sends
// the remaining groups as ephemeral follow-ups, in order. It returns how many
// groups Discord accepted.
func sendEmbeds(s *discordgo.Session, i *discordgo.Interaction, groups [][]*discordgo.MessageEmbed) (int, error) {
	first := groups[0]
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Embeds: &first}); err != nil {
		return 0, err
	}
	for n, group := range groups[1:] {
		if _, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
			Embeds: group,
			Flags:  discordgo.MessageFlagsEphemeral,
		}); err != nil {
			return n + 1, err
		}
	}
	return len(groups), nil
}

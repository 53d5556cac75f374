package discord

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"deeplbot/internal/domain/language"
)

const embedColor = 0x0099FF

// Discord embed limits.
const (
	maxTitle       = 256
	maxDescription = 4096
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFooter      = 2048
	maxAuthor      = 256

	// MaxEmbedsPerMessage is how many embeds a single message may carry.
	MaxEmbedsPerMessage = 10
	// MaxCharsPerMessage caps the summed EmbedSize of all embeds in one message.
	MaxCharsPerMessage = 6000
)

// ProvenanceText is the default footer note, with English language names.
func ProvenanceText(sourceLang, targetLang string) string {
	return fmt.Sprintf("Translated from %s to %s", language.DisplayName(sourceLang), language.DisplayName(targetLang))
}

// BuildTranslationEmbed builds the reply block for a translated message body,
// attributed to the original author.
func BuildTranslationEmbed(authorName, avatarURL, text, footer string, at time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: text,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
		Timestamp:   at.Format(time.RFC3339),
	}
	if authorName != "" || avatarURL != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: authorName, IconURL: avatarURL}
	}
	return embed
}

// ClampEmbed cuts every text of the embed to Discord's limits, in place.
func ClampEmbed(embed *discordgo.MessageEmbed) {
	if embed == nil {
		return
	}
	embed.Title = truncate(embed.Title, maxTitle)
	embed.Description = truncate(embed.Description, maxDescription)
	if embed.Author != nil {
		embed.Author.Name = truncate(embed.Author.Name, maxAuthor)
	}
	if embed.Footer != nil {
		embed.Footer.Text = truncate(embed.Footer.Text, maxFooter)
	}
	for _, f := range embed.Fields {
		if f == nil {
			continue
		}
		f.Name = truncate(f.Name, maxFieldName)
		f.Value = truncate(f.Value, maxFieldValue)
	}

	// One embed must still fit in a message on its own: drop trailing fields
	// while the description alone cannot absorb the overflow, then shorten it.
	for len(embed.Fields) > 0 && EmbedSize(embed)-MaxCharsPerMessage >= utf8.RuneCountInString(embed.Description) {
		embed.Fields = embed.Fields[:len(embed.Fields)-1]
	}
	if over := EmbedSize(embed) - MaxCharsPerMessage; over > 0 {
		keep := utf8.RuneCountInString(embed.Description) - over
		embed.Description = truncate(embed.Description, max(keep, 1))
	}
}

// EmbedSize counts the characters Discord sums against MaxCharsPerMessage.
func EmbedSize(embed *discordgo.MessageEmbed) int {
	if embed == nil {
		return 0
	}
	n := utf8.RuneCountInString(embed.Title) + utf8.RuneCountInString(embed.Description)
	if embed.Author != nil {
		n += utf8.RuneCountInString(embed.Author.Name)
	}
	if embed.Footer != nil {
		n += utf8.RuneCountInString(embed.Footer.Text)
	}
	for _, f := range embed.Fields {
		if f != nil {
			n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
		}
	}
	return n
}

// truncate keeps at most limit runes, ending with an ellipsis when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// SplitEmbeds chunks embeds, in order, into groups that fit in one message each:
// at most MaxEmbedsPerMessage embeds and MaxCharsPerMessage characters.
func SplitEmbeds(embeds []*discordgo.MessageEmbed) [][]*discordgo.MessageEmbed {
	var groups [][]*discordgo.MessageEmbed
	var current []*discordgo.MessageEmbed
	size := 0
	for _, embed := range embeds {
		n := EmbedSize(embed)
		if len(current) == MaxEmbedsPerMessage || (len(current) > 0 && size+n > MaxCharsPerMessage) {
			groups = append(groups, current)
			current, size = nil, 0
		}
		current = append(current, embed)
		size += n
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

package discord

import (
	"github.com/bwmarrin/discordgo"

	"deeplbot/internal/domain/entities"
)

// Source is the message being translated, as seen by the bot.
type Source struct {
	Content         string
	AuthorName      string
	AuthorAvatarURL string
	Embeds          []*discordgo.MessageEmbed
}

// Extract walks the message and returns its non-empty texts in a fixed order:
// body, then for each embed title, description, author name, footer text and
// each field's name then value.
func Extract(src Source) []entities.Unit {
	var units []entities.Unit
	add := func(text string, origin entities.SlotPath) {
		if text != "" {
			units = append(units, entities.Unit{Text: text, Origin: origin})
		}
	}

	add(src.Content, entities.BodySlot())
	for i, embed := range src.Embeds {
		if embed == nil {
			continue
		}
		add(embed.Title, entities.TitleSlot(i))
		add(embed.Description, entities.DescriptionSlot(i))
		if embed.Author != nil {
			add(embed.Author.Name, entities.AuthorNameSlot(i))
		}
		if embed.Footer != nil {
			add(embed.Footer.Text, entities.FooterTextSlot(i))
		}
		for j, field := range embed.Fields {
			if field == nil {
				continue
			}
			add(field.Name, entities.FieldNameSlot(i, j))
			add(field.Value, entities.FieldValueSlot(i, j))
		}
	}
	return units
}

// Texts projects the units' texts, preserving order.
func Texts(units []entities.Unit) []string {
	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text
	}
	return texts
}

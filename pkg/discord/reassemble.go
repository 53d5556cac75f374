package discord

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
)

// Assembler rebuilds a message's shape from translated units.
type Assembler struct {
	// Provenance renders the footer note from the detected source and target codes.
	// Defaults to ProvenanceText.
	Provenance func(sourceLang, targetLang string) string
	// Now stamps the body block. Defaults to time.Now.
	Now func() time.Time
}

// Reassemble routes results[i] back to units[i].Origin. It returns the body block
// (nil when the body was not translated) and one embed per source embed, in order.
// Source embeds are never modified.
func (a Assembler) Reassemble(src Source, units []entities.Unit, results []entities.Result, targetLang string) (*discordgo.MessageEmbed, []*discordgo.MessageEmbed, error) {
	if len(units) != len(results) {
		return nil, nil, domain.CountMismatch(len(units), len(results))
	}

	translated := make(map[entities.SlotPath]entities.Result, len(units))
	perEmbed := make(map[int][]entities.SlotPath)
	for i, u := range units {
		translated[u.Origin] = results[i]
		if !u.Origin.IsBody() {
			perEmbed[u.Origin.Embed] = append(perEmbed[u.Origin.Embed], u.Origin)
		}
	}

	var body *discordgo.MessageEmbed
	if r, ok := translated[entities.BodySlot()]; ok {
		footer := a.provenance(r.DetectedSourceLang, targetLang)
		body = BuildTranslationEmbed(src.AuthorName, src.AuthorAvatarURL, r.Text, footer, a.now())
	}

	embeds := make([]*discordgo.MessageEmbed, 0, len(src.Embeds))
	for i, orig := range src.Embeds {
		if orig == nil {
			continue
		}
		embeds = append(embeds, a.overlay(orig, perEmbed[i], translated, targetLang))
	}
	return body, embeds, nil
}

func (a Assembler) overlay(orig *discordgo.MessageEmbed, slots []entities.SlotPath, translated map[entities.SlotPath]entities.Result, targetLang string) *discordgo.MessageEmbed {
	out := cloneEmbed(orig)

	detected := ""
	applied := 0
	for _, slot := range slots {
		r := translated[slot]
		switch slot.Kind {
		case entities.SlotTitle:
			out.Title = r.Text
		case entities.SlotDescription:
			out.Description = r.Text
		case entities.SlotAuthorName:
			if out.Author == nil {
				out.Author = &discordgo.MessageEmbedAuthor{}
			}
			out.Author.Name = r.Text
		case entities.SlotFooterText:
			if out.Footer == nil {
				out.Footer = &discordgo.MessageEmbedFooter{}
			}
			out.Footer.Text = r.Text
		case entities.SlotField:
			if slot.Field < 0 || slot.Field >= len(out.Fields) || out.Fields[slot.Field] == nil {
				log.Printf("⚠️ Champ introuvable pour %s, traduction ignorée", slot)
				continue
			}
			if slot.Part == entities.FieldName {
				out.Fields[slot.Field].Name = r.Text
			} else {
				out.Fields[slot.Field].Value = r.Text
			}
		default:
			continue
		}
		applied++
		if detected == "" {
			detected = r.DetectedSourceLang
		}
	}

	if applied > 0 && (out.Footer == nil || out.Footer.Text == "") {
		if out.Footer == nil {
			out.Footer = &discordgo.MessageEmbedFooter{}
		}
		out.Footer.Text = a.provenance(detected, targetLang)
	}
	return out
}

// cloneEmbed copies everything the overlay may touch so the original stays intact.
func cloneEmbed(orig *discordgo.MessageEmbed) *discordgo.MessageEmbed {
	out := *orig
	if orig.Author != nil {
		author := *orig.Author
		out.Author = &author
	}
	if orig.Footer != nil {
		footer := *orig.Footer
		out.Footer = &footer
	}
	if orig.Fields != nil {
		out.Fields = make([]*discordgo.MessageEmbedField, len(orig.Fields))
		for j, f := range orig.Fields {
			if f != nil {
				field := *f
				out.Fields[j] = &field
			}
		}
	}
	return &out
}

func (a Assembler) provenance(sourceLang, targetLang string) string {
	if a.Provenance != nil {
		return a.Provenance(sourceLang, targetLang)
	}
	return ProvenanceText(sourceLang, targetLang)
}

func (a Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

package discord

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

func TestProvenanceText(t *testing.T) {
	if got := ProvenanceText("fr", "EN-US"); got != "Translated from French to American English" {
		t.Errorf("ProvenanceText() = %q", got)
	}
}

func TestBuildTranslationEmbed_NoAuthor(t *testing.T) {
	embed := BuildTranslationEmbed("", "", "text", "footer", fixedNow)
	if embed.Author != nil {
		t.Errorf("author = %#v, want nil", embed.Author)
	}
	if embed.Footer.Text != "footer" || embed.Timestamp != "2026-10-17T12:00:00Z" {
		t.Errorf("embed = %#v", embed)
	}
}

func TestClampEmbed(t *testing.T) {
	long := strings.Repeat("é", 5000)
	embed := &discordgo.MessageEmbed{
		Title:       long,
		Description: long,
		Author:      &discordgo.MessageEmbedAuthor{Name: long},
		Footer:      &discordgo.MessageEmbedFooter{Text: long},
		Fields:      []*discordgo.MessageEmbedField{{Name: long, Value: long}, nil},
	}
	ClampEmbed(embed)

	checks := []struct {
		name  string
		value string
		limit int
	}{
		{"title", embed.Title, maxTitle},
		{"author", embed.Author.Name, maxAuthor},
		{"footer", embed.Footer.Text, maxFooter},
		{"field name", embed.Fields[0].Name, maxFieldName},
		{"field value", embed.Fields[0].Value, maxFieldValue},
	}
	for _, c := range checks {
		if n := utf8.RuneCountInString(c.value); n != c.limit {
			t.Errorf("%s: %d runes, want %d", c.name, n, c.limit)
		}
		if !strings.HasSuffix(c.value, "…") {
			t.Errorf("%s: missing ellipsis", c.name)
		}
	}

	// 256+4096+256+2048+256+1024 runes is over the message total, so the
	// description gives back the difference.
	wantDescription := maxDescription - (maxTitle + maxDescription + maxAuthor + maxFooter + maxFieldName + maxFieldValue - MaxCharsPerMessage)
	if n := utf8.RuneCountInString(embed.Description); n != wantDescription {
		t.Errorf("description: %d runes, want %d", n, wantDescription)
	}
	if got := EmbedSize(embed); got != MaxCharsPerMessage {
		t.Errorf("EmbedSize() = %d, want %d", got, MaxCharsPerMessage)
	}

	short := &discordgo.MessageEmbed{Title: "ok"}
	ClampEmbed(short)
	if short.Title != "ok" {
		t.Errorf("short title changed to %q", short.Title)
	}
	ClampEmbed(nil)
}

func TestSplitEmbeds(t *testing.T) {
	build := func(n int) []*discordgo.MessageEmbed {
		out := make([]*discordgo.MessageEmbed, n)
		for i := range out {
			out[i] = &discordgo.MessageEmbed{Color: i}
		}
		return out
	}
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, []int{1}},
		{10, []int{10}},
		{11, []int{10, 1}},
		{21, []int{10, 10, 1}},
	}
	for _, tt := range tests {
		groups := SplitEmbeds(build(tt.n))
		if len(groups) != len(tt.want) {
			t.Errorf("SplitEmbeds(%d) = %d groups, want %d", tt.n, len(groups), len(tt.want))
			continue
		}
		for i, g := range groups {
			if len(g) != tt.want[i] {
				t.Errorf("SplitEmbeds(%d)[%d] = %d embeds, want %d", tt.n, i, len(g), tt.want[i])
			}
		}
	}
	groups := SplitEmbeds(build(11))
	if groups[1][0].Color != 10 {
		t.Errorf("order lost across groups: %d", groups[1][0].Color)
	}
}

func TestClampEmbed_DropsTrailingFieldsOverTotal(t *testing.T) {
	fields := make([]*discordgo.MessageEmbedField, 8)
	for i := range fields {
		fields[i] = &discordgo.MessageEmbedField{Name: strings.Repeat("n", 200), Value: strings.Repeat("v", 1000)}
	}
	embed := &discordgo.MessageEmbed{Title: "t", Description: "short", Fields: fields}
	ClampEmbed(embed)

	if got := EmbedSize(embed); got > MaxCharsPerMessage {
		t.Fatalf("EmbedSize() = %d, want <= %d", got, MaxCharsPerMessage)
	}
	if len(embed.Fields) != 4 {
		t.Errorf("fields = %d, want 4", len(embed.Fields))
	}
	if embed.Title != "t" || embed.Description != "short" {
		t.Errorf("title = %q, description = %q, want both kept", embed.Title, embed.Description)
	}
}

func TestEmbedSize(t *testing.T) {
	embed := &discordgo.MessageEmbed{
		Title:       "ab",
		Description: "été",
		URL:         "https://example.com/not-counted",
		Author:      &discordgo.MessageEmbedAuthor{Name: "x", IconURL: "https://example.com/icon.png"},
		Footer:      &discordgo.MessageEmbedFooter{Text: "yz"},
		Fields:      []*discordgo.MessageEmbedField{{Name: "k", Value: "vv"}, nil},
	}
	if got := EmbedSize(embed); got != 11 {
		t.Errorf("EmbedSize() = %d, want 11", got)
	}
	if EmbedSize(nil) != 0 {
		t.Error("EmbedSize(nil) should be 0")
	}
}

func TestSplitEmbeds_CharacterBudget(t *testing.T) {
	sized := func(sizes ...int) []*discordgo.MessageEmbed {
		out := make([]*discordgo.MessageEmbed, len(sizes))
		for i, n := range sizes {
			out[i] = &discordgo.MessageEmbed{Description: strings.Repeat("a", n), Color: i}
		}
		return out
	}
	tests := []struct {
		name  string
		sizes []int
		want  []int
	}{
		{name: "body and large embed", sizes: []int{4000, 3000}, want: []int{1, 1}},
		{name: "exactly at budget", sizes: []int{2000, 2000, 2000}, want: []int{3}},
		{name: "one over budget", sizes: []int{2000, 2000, 2001}, want: []int{2, 1}},
		{name: "small then large", sizes: []int{10, 10, 5990, 10}, want: []int{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := SplitEmbeds(sized(tt.sizes...))
			if len(groups) != len(tt.want) {
				t.Fatalf("groups = %d, want %d", len(groups), len(tt.want))
			}
			next := 0
			for i, g := range groups {
				if len(g) != tt.want[i] {
					t.Errorf("group %d = %d embeds, want %d", i, len(g), tt.want[i])
				}
				total := 0
				for _, e := range g {
					if e.Color != next {
						t.Errorf("embed %d out of order", e.Color)
					}
					next++
					total += EmbedSize(e)
				}
				if total > MaxCharsPerMessage {
					t.Errorf("group %d carries %d chars", i, total)
				}
			}
		})
	}
}

package discord

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

type stubPreferences struct{ enabled bool }

func (p stubPreferences) Enabled() bool                                       { return p.enabled }
func (stubPreferences) Get(context.Context, string) (string, error)           { return "", nil }
func (stubPreferences) Set(_ context.Context, _, lang string) (string, error) { return lang, nil }
func (stubPreferences) Clear(context.Context, string) error                   { return nil }

type keyTranslator struct{}

func (keyTranslator) T(locale, key string, _ map[string]any) string { return locale + ":" + key }

func TestResolveDisplayName(t *testing.T) {
	user := &discordgo.User{ID: "1", Username: "jdoe", GlobalName: "Jane"}
	tests := []struct {
		name   string
		member *discordgo.Member
		user   *discordgo.User
		want   string
	}{
		{name: "nickname wins", member: &discordgo.Member{Nick: "JJ"}, user: user, want: "JJ"},
		{name: "global name", member: &discordgo.Member{}, user: user, want: "Jane"},
		{name: "username", user: &discordgo.User{Username: "jdoe"}, want: "jdoe"},
		{name: "member user only", member: &discordgo.Member{User: &discordgo.User{Username: "m"}}, want: "m"},
		{name: "nothing", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveDisplayName(tt.member, tt.user); got != tt.want {
				t.Errorf("resolveDisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.Interaction{Member: &discordgo.Member{User: &discordgo.User{ID: "10"}}}
	dm := &discordgo.Interaction{User: &discordgo.User{ID: "20"}}
	if got := interactionUserID(guild); got != "10" {
		t.Errorf("guild user = %q", got)
	}
	if got := interactionUserID(dm); got != "20" {
		t.Errorf("dm user = %q", got)
	}
	if got := interactionUserID(&discordgo.Interaction{}); got != "" {
		t.Errorf("empty = %q", got)
	}
}

func TestTargetMessageAndSource(t *testing.T) {
	author := &discordgo.User{ID: "7", Username: "jdoe", Avatar: "abc"}
	msg := &discordgo.Message{
		ID:      "99",
		Content: "Bonjour",
		Author:  author,
		Embeds:  []*discordgo.MessageEmbed{{Title: "Titre"}},
	}
	data := discordgo.ApplicationCommandInteractionData{
		TargetID: "99",
		Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
			Messages: map[string]*discordgo.Message{"99": msg},
			Members:  map[string]*discordgo.Member{"7": {Nick: "Jo"}},
		},
	}

	got := targetMessage(data)
	if got != msg {
		t.Fatalf("targetMessage() = %v", got)
	}
	if targetMessage(discordgo.ApplicationCommandInteractionData{TargetID: "1"}) != nil {
		t.Error("targetMessage() without resolved data should be nil")
	}

	src := messageSource(msg, data.Resolved)
	if src.Content != "Bonjour" || len(src.Embeds) != 1 {
		t.Errorf("source = %+v", src)
	}
	if src.AuthorName != "Jo" {
		t.Errorf("AuthorName = %q, want resolved nickname", src.AuthorName)
	}
	if !strings.Contains(src.AuthorAvatarURL, "size=128") {
		t.Errorf("AuthorAvatarURL = %q", src.AuthorAvatarURL)
	}
}

func TestLanguageChoices(t *testing.T) {
	all := languageChoices("", maxChoices)
	if len(all) != maxChoices {
		t.Fatalf("len = %d, want %d", len(all), maxChoices)
	}
	if all[0].Value != autoChoice {
		t.Errorf("first choice = %v, want auto", all[0].Value)
	}

	german := languageChoices("germ", maxChoices)
	if len(german) != 1 || german[0].Value != "DE" || german[0].Name != "German (DE)" {
		t.Errorf("germ = %+v", german)
	}

	byCode := languageChoices("ja", maxChoices)
	if len(byCode) == 0 || byCode[0].Value != "JA" {
		t.Errorf("ja = %+v", byCode)
	}

	if got := languageChoices("au", maxChoices); len(got) == 0 || got[0].Value != autoChoice {
		t.Errorf("au = %+v", got)
	}
	if got := languageChoices("klingon", maxChoices); len(got) != 0 {
		t.Errorf("klingon = %+v", got)
	}
}

func TestOptionHelpers(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "other", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		{Name: languageOptionName, Type: discordgo.ApplicationCommandOptionString, Value: "de", Focused: true},
	}
	if got := optionString(options, languageOptionName); got != "de" {
		t.Errorf("optionString() = %q", got)
	}
	if got := optionString(options, "missing"); got != "" {
		t.Errorf("optionString(missing) = %q", got)
	}
	if got := focusedValue(options); got != "de" {
		t.Errorf("focusedValue() = %q", got)
	}
}

func TestCommands(t *testing.T) {
	disabled := NewHandler(nil, stubPreferences{}, keyTranslator{}, "en")
	cmds := disabled.Commands("Translate with DeepL")
	if len(cmds) != 1 || cmds[0].Type != discordgo.MessageApplicationCommand || cmds[0].Name != "Translate with DeepL" {
		t.Fatalf("commands = %+v", cmds)
	}

	enabled := NewHandler(nil, stubPreferences{enabled: true}, keyTranslator{}, "en")
	cmds = enabled.Commands("Translate")
	if len(cmds) != 2 {
		t.Fatalf("len = %d, want 2", len(cmds))
	}
	lang := cmds[1]
	if lang.Name != languageCommandName || lang.Description != "en:command.language.description" {
		t.Errorf("language command = %+v", lang)
	}
	if got := (*lang.DescriptionLocalizations)[discordgo.French]; got != "fr:command.language.description" {
		t.Errorf("french description = %q", got)
	}
	if len(lang.Options) != 1 || !lang.Options[0].Autocomplete || lang.Options[0].Required {
		t.Fatalf("options = %+v", lang.Options)
	}
	if got := lang.Options[0].DescriptionLocalizations[discordgo.German]; got != "de:command.language.option" {
		t.Errorf("german option description = %q", got)
	}
}

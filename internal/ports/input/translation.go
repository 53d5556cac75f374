package input

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "deeplbot/pkg/discord"
)

// TranslateRequest is one "translate this message" invocation.
type TranslateRequest struct {
	UserID  string
	Locale  string // Discord locale of the invoking user
	Message pkgdiscord.Source
}

// TranslateReply is the final reply: the translated body block (if any) first,
// then the reconstructed embeds in their original order.
type TranslateReply struct {
	TargetLang string
	Embeds     []*discordgo.MessageEmbed
}

type TranslationUseCase interface {
	TranslateMessage(ctx context.Context, req TranslateRequest) (*TranslateReply, error)
}

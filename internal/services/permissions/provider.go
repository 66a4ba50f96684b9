package permissions

import (
	"github.com/bwmarrin/discordgo"
	"github.com/zekrotja/ken"
)

type Provider interface {
	ken.MiddlewareBefore

	// CanMove reports whether the bot may move members out of the
	// given channel right now.
	CanMove(s *discordgo.Session, channelID string) bool

	// CanMute reports whether the bot may server mute members in the
	// given channel right now.
	CanMute(s *discordgo.Session, channelID string) bool

	// CanDeafen reports whether the bot may server deafen members in
	// the given channel right now.
	CanDeafen(s *discordgo.Session, channelID string) bool
}

// CommandPerms is implemented by commands that require the invoking
// member to hold the returned permission bits in the invoking channel.
type CommandPerms interface {
	Perm() int64
}

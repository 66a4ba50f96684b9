package moderation

import "github.com/bwmarrin/discordgo"

// Provider issues best-effort voice moderation calls against the
// Discord API. Implementations never propagate transport or API
// errors; a failed call only reports false so that callers are not
// interrupted by a single failed mutation.
type Provider interface {
	// Disconnect removes the user from whatever voice channel they
	// are in within the guild.
	Disconnect(s *discordgo.Session, guildID, userID string) bool

	// SetMute sets the server mute flag of the guild member.
	SetMute(s *discordgo.Session, guildID, userID string, mute bool) bool

	// SetDeafen sets the server deafen flag of the guild member.
	SetDeafen(s *discordgo.Session, guildID, userID string, deaf bool) bool
}

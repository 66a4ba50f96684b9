package voicemod

import (
	"github.com/bwmarrin/discordgo"

	"github.com/zekurio/warden/internal/models"
)

type VoiceModProvider interface {
	// GetPrefs returns the stored preferences of the user, lazily
	// materializing an all-false record if none exist yet.
	GetPrefs(userID string) models.VoiceModPrefs

	// SetPrefs overwrites the preference record of the user.
	SetPrefs(userID string, prefs models.VoiceModPrefs)

	// ToggleMute flips the permanent mute flag of the user and
	// returns the new state. Enabling it mutes the user right away if
	// they currently sit in a voice channel anywhere; disabling it
	// lifts the server mute in the guild the toggle was invoked from.
	ToggleMute(s *discordgo.Session, invokingGuildID, userID string) bool

	// ToggleDeafen behaves like ToggleMute for the deafen flag.
	ToggleDeafen(s *discordgo.Session, invokingGuildID, userID string) bool

	// ToggleDisconnect flips the permanent disconnect flag. Enabling
	// it kicks the user out of their current voice channel, if any.
	// Disabling it issues no call since there is nothing to undo.
	ToggleDisconnect(s *discordgo.Session, invokingGuildID, userID string) bool

	// Enforce runs one batch of observed voice states against the
	// stored preferences and issues the minimal set of corrective
	// calls.
	Enforce(s *discordgo.Session, states []*discordgo.VoiceState)

	// Sweep re-enforces the cached voice states of every guild the
	// session is connected to.
	Sweep(s *discordgo.Session)

	// TrackedUsers returns the number of users with at least one
	// active flag.
	TrackedUsers() int
}

// ChannelResolver normalizes channel and voice state lookups so the
// enforcement loop only ever deals with one well-typed guild relation.
type ChannelResolver interface {
	// GuildOf returns the guild the channel belongs to.
	GuildOf(s *discordgo.Session, channelID string) (string, error)

	// FindVoiceState returns the current voice state of the user in
	// whatever guild they are connected in.
	FindVoiceState(s *discordgo.Session, userID string) (*discordgo.VoiceState, error)
}

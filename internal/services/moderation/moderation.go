package moderation

import (
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/sarulabs/di/v2"
)

type Moderator struct{}

var _ Provider = (*Moderator)(nil)

func InitModerator(ctn di.Container) *Moderator {
	return &Moderator{}
}

func (m *Moderator) Disconnect(s *discordgo.Session, guildID, userID string) bool {
	if err := s.GuildMemberMove(guildID, userID, nil); err != nil {
		log.With(err).Debug("Failed disconnecting member", "GuildID", guildID, "UserID", userID)
		return false
	}

	return true
}

func (m *Moderator) SetMute(s *discordgo.Session, guildID, userID string, mute bool) bool {
	if err := s.GuildMemberMute(guildID, userID, mute); err != nil {
		log.With(err).Debug("Failed setting member mute", "GuildID", guildID, "UserID", userID, "Mute", mute)
		return false
	}

	return true
}

func (m *Moderator) SetDeafen(s *discordgo.Session, guildID, userID string, deaf bool) bool {
	if err := s.GuildMemberDeafen(guildID, userID, deaf); err != nil {
		log.With(err).Debug("Failed setting member deafen", "GuildID", guildID, "UserID", userID, "Deaf", deaf)
		return false
	}

	return true
}

package voicemod

import (
	"github.com/bwmarrin/discordgo"

	"github.com/zekurio/warden/pkg/discordutils"
)

// StateResolver resolves channels and voice states through the session
// state cache, falling back to the API for unknown channels.
type StateResolver struct{}

var _ ChannelResolver = (*StateResolver)(nil)

func (StateResolver) GuildOf(s *discordgo.Session, channelID string) (string, error) {
	ch, err := discordutils.GetChannel(s, channelID)
	if err != nil {
		return "", err
	}

	return ch.GuildID, nil
}

func (StateResolver) FindVoiceState(s *discordgo.Session, userID string) (*discordgo.VoiceState, error) {
	return discordutils.FindUserVoiceState(s, userID)
}

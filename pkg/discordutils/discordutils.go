package discordutils

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/zekurio/warden/internal/util/static"
)

var ErrNoVoiceState = errors.New("voice state not found")

// GetGuild returns the guild from the state cache, falling back
// to the API if it is not cached.
func GetGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	g, err := s.State.Guild(guildID)
	if err != nil {
		g, err = s.Guild(guildID)
	}
	return g, err
}

// GetChannel returns the channel from the state cache, falling back
// to the API if it is not cached.
func GetChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	c, err := s.State.Channel(channelID)
	if err != nil {
		c, err = s.Channel(channelID)
	}
	return c, err
}

// GetMember returns the guild member from the state cache, falling back
// to the API if it is not cached.
func GetMember(s *discordgo.Session, guildID, userID string) (*discordgo.Member, error) {
	m, err := s.State.Member(guildID, userID)
	if err != nil {
		m, err = s.GuildMember(guildID, userID)
	}
	return m, err
}

// FindUserVoiceState scans the cached voice states of all guilds and
// returns the one of the given user, regardless of which guild they
// are connected in.
func FindUserVoiceState(s *discordgo.Session, userID string) (*discordgo.VoiceState, error) {
	for _, g := range s.State.Guilds {
		for _, vs := range g.VoiceStates {
			if vs.UserID == userID {
				return vs, nil
			}
		}
	}

	return nil, ErrNoVoiceState
}

// SendMessageDM sends a direct message to the given user.
func SendMessageDM(s *discordgo.Session, userID, message string) (msg *discordgo.Message, err error) {
	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		return
	}

	msg, err = s.ChannelMessageSend(ch.ID, message)
	return
}

// GetInviteLink returns the invite link for the bot session.
func GetInviteLink(s *discordgo.Session) string {
	return fmt.Sprintf("https://discord.com/api/oauth2/authorize?client_id=%s&scope=%s&permissions=%d",
		s.State.User.ID, static.OAuthScopes, static.InvitePermission)
}

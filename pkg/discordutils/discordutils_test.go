package discordutils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func testSession(t *testing.T) *discordgo.Session {
	t.Helper()

	s := &discordgo.Session{
		State:        discordgo.NewState(),
		StateEnabled: true,
	}

	err := s.State.GuildAdd(&discordgo.Guild{
		ID: "362162947738566657",
		Channels: []*discordgo.Channel{
			{
				ID:      "362169338327334913",
				GuildID: "362162947738566657",
				Type:    discordgo.ChannelTypeGuildVoice,
			},
		},
		VoiceStates: []*discordgo.VoiceState{
			{
				UserID:    "352002717285089280",
				GuildID:   "362162947738566657",
				ChannelID: "362169338327334913",
			},
		},
	})
	assert.Nil(t, err)

	return s
}

func TestGetChannel(t *testing.T) {
	s := testSession(t)

	ch, err := GetChannel(s, "362169338327334913")
	assert.Nil(t, err)
	assert.Equal(t, "362162947738566657", ch.GuildID)
}

func TestGetGuild(t *testing.T) {
	s := testSession(t)

	g, err := GetGuild(s, "362162947738566657")
	assert.Nil(t, err)
	assert.Equal(t, "362162947738566657", g.ID)
}

func TestFindUserVoiceState(t *testing.T) {
	s := testSession(t)

	vs, err := FindUserVoiceState(s, "352002717285089280")
	assert.Nil(t, err)
	assert.Equal(t, "362169338327334913", vs.ChannelID)
	assert.Equal(t, "362162947738566657", vs.GuildID)

	_, err = FindUserVoiceState(s, "531861558834495498")
	assert.ErrorIs(t, err, ErrNoVoiceState)
}

func TestGetInviteLink(t *testing.T) {
	s := testSession(t)
	s.State.User = &discordgo.User{ID: "853414487568416768"}

	link := GetInviteLink(s)
	assert.Contains(t, link, "client_id=853414487568416768")
	assert.Contains(t, link, "scope=bot%20applications.commands")
}

package inits

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sarulabs/di/v2"

	"github.com/zekurio/warden/internal/listeners"
	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/util/static"
)

func InitDiscord(ctn di.Container) (*discordgo.Session, error) {
	cfg := ctn.Get(static.DiConfig).(models.Config)

	s, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, err
	}

	s.Identify.Intents = discordgo.MakeIntent(static.Intents)

	s.StateEnabled = true
	s.State.TrackChannels = true
	s.State.TrackMembers = true
	s.State.TrackVoice = true

	s.AddHandler(listeners.NewListenerReady(ctn).Handler)

	guildCreate := listeners.NewGuildCreate(ctn)
	s.AddHandler(guildCreate.GuildLimit)
	s.AddHandler(guildCreate.EnforcePrefs)

	s.AddHandler(listeners.NewListenerVoiceMod(ctn).Handler)

	return s, nil
}

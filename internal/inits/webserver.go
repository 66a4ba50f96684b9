package inits

import (
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/sarulabs/di/v2"

	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/services/voicemod"
	"github.com/zekurio/warden/internal/services/webserver"
	"github.com/zekurio/warden/internal/util/static"
)

func InitWebserver(ctn di.Container) (*webserver.Webserver, error) {
	cfg := ctn.Get(static.DiConfig).(models.Config)
	s := ctn.Get(static.DiDiscord).(*discordgo.Session)
	vm := ctn.Get(static.DiVoiceMod).(voicemod.VoiceModProvider)

	ws := webserver.New(cfg.Webserver, s, vm)

	go func() {
		log.Info("Webserver listening", "Addr", cfg.Webserver.Addr)
		if err := ws.ListenAndServe(); err != nil {
			log.With(err).Error("Webserver failed", "Addr", cfg.Webserver.Addr)
		}
	}()

	return ws, nil
}

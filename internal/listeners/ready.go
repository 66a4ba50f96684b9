package listeners

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/sarulabs/di/v2"

	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/services/scheduler"
	"github.com/zekurio/warden/internal/services/voicemod"
	"github.com/zekurio/warden/internal/util/static"
	"github.com/zekurio/warden/pkg/discordutils"
)

type ListenerReady struct {
	cfg   models.Config
	sched scheduler.Provider
	vm    voicemod.VoiceModProvider

	sweepScheduled bool
}

func NewListenerReady(ctn di.Container) *ListenerReady {
	return &ListenerReady{
		cfg:   ctn.Get(static.DiConfig).(models.Config),
		sched: ctn.Get(static.DiScheduler).(scheduler.Provider),
		vm:    ctn.Get(static.DiVoiceMod).(voicemod.VoiceModProvider),
	}
}

func (l *ListenerReady) Handler(s *discordgo.Session, e *discordgo.Ready) {
	err := s.UpdateListeningStatus("voice channels")
	if err != nil {
		return
	}
	log.Info("Signed in!", "Username", fmt.Sprintf("%s#%s", e.User.Username, e.User.Discriminator), "ID", e.User.ID)
	log.Infof("Invite link: %s", discordutils.GetInviteLink(s))

	// Ready fires again on reconnects, the sweep only gets scheduled
	// once.
	if spec := l.cfg.VoiceMod.SweepSchedule; spec != "" && !l.sweepScheduled {
		if _, err := l.sched.Schedule(spec, func() { l.vm.Sweep(s) }); err != nil {
			log.With(err).Error("Failed scheduling voice moderation sweep")
		} else {
			l.sweepScheduled = true
		}
	}

	l.sched.Start()
}

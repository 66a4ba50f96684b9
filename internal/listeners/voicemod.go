package listeners

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sarulabs/di/v2"

	"github.com/zekurio/warden/internal/services/voicemod"
	"github.com/zekurio/warden/internal/util/static"
)

type ListenerVoiceMod struct {
	vm voicemod.VoiceModProvider
}

func NewListenerVoiceMod(ctn di.Container) *ListenerVoiceMod {
	return &ListenerVoiceMod{
		vm: ctn.Get(static.DiVoiceMod).(voicemod.VoiceModProvider),
	}
}

// Handler feeds every voice state update into the enforcement loop.
// The gateway delivers one state per event, so this is a batch of one.
func (l *ListenerVoiceMod) Handler(s *discordgo.Session, e *discordgo.VoiceStateUpdate) {
	l.vm.Enforce(s, []*discordgo.VoiceState{e.VoiceState})
}

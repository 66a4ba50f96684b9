package listeners

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/sarulabs/di/v2"

	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/services/voicemod"
	"github.com/zekurio/warden/internal/util/static"
	"github.com/zekurio/warden/pkg/discordutils"
)

type GuildCreate struct {
	cfg models.Config
	vm  voicemod.VoiceModProvider
}

func NewGuildCreate(ctn di.Container) *GuildCreate {
	return &GuildCreate{
		cfg: ctn.Get(static.DiConfig).(models.Config),
		vm:  ctn.Get(static.DiVoiceMod).(voicemod.VoiceModProvider),
	}
}

func (g *GuildCreate) GuildLimit(s *discordgo.Session, e *discordgo.GuildCreate) {

	// only react to guilds joined just now
	if e.JoinedAt.Unix() <= time.Now().Add(-time.Minute).Unix() {
		return
	}

	limit := g.cfg.Discord.GuildLimit
	if limit == -1 {
		return
	}

	if len(s.State.Guilds) > limit {
		_, err := discordutils.SendMessageDM(s, e.OwnerID,
			fmt.Sprintf("Sorry, the instance owner disallowed me to join more than %d guilds.", limit))
		if err != nil {
			log.With(err).Error("Failed to send message", "GuildID", e.Guild.ID, "UserID", e.OwnerID)
		}

		if err = s.GuildLeave(e.Guild.ID); err != nil {
			log.With(err).Error("Failed to leave guild", "GuildID", e.Guild.ID)
			return
		}

		log.Debug("Left guild due to guild limit", "GuildID", e.Guild.ID)
	}
}

// EnforcePrefs runs the enforcement loop over the full voice state
// list delivered with the guild, so tracked users get corrected right
// after the guild becomes available.
func (g *GuildCreate) EnforcePrefs(s *discordgo.Session, e *discordgo.GuildCreate) {
	if len(e.VoiceStates) == 0 {
		return
	}

	log.Debug("Enforcing voice moderation on guild create", "GuildID", e.Guild.ID, "States", len(e.VoiceStates))
	g.vm.Enforce(s, e.VoiceStates)
}

package voicemod

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/rs/xid"
	"github.com/sarulabs/di/v2"

	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/services/moderation"
	"github.com/zekurio/warden/internal/services/permissions"
	"github.com/zekurio/warden/internal/util/static"
)

// Handler keeps the per-user voice moderation preferences and applies
// them against observed voice states. Preferences live in memory only
// and are gone when the session ends. The map is guarded by mu since
// gateway handlers, command toggles, the sweep job and the status
// endpoint all run on different goroutines.
type Handler struct {
	perms permissions.Provider
	mod   moderation.Provider
	res   ChannelResolver

	mu    sync.RWMutex
	prefs map[string]models.VoiceModPrefs
}

var _ VoiceModProvider = (*Handler)(nil)

func InitVoiceMod(ctn di.Container) *Handler {
	return &Handler{
		perms: ctn.Get(static.DiPermissions).(permissions.Provider),
		mod:   ctn.Get(static.DiModeration).(moderation.Provider),
		res:   StateResolver{},
		prefs: make(map[string]models.VoiceModPrefs),
	}
}

func (h *Handler) GetPrefs(userID string) models.VoiceModPrefs {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.prefs[userID]
	if !ok {
		h.prefs[userID] = p
	}

	return p
}

func (h *Handler) SetPrefs(userID string, prefs models.VoiceModPrefs) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prefs[userID] = prefs
}

func (h *Handler) TrackedUsers() (n int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, p := range h.prefs {
		if p.Active() {
			n++
		}
	}

	return
}

// Enforce processes one batch of voice states. A panic while handling
// an event aborts the remaining events of the batch but leaves the
// handler healthy for the next one; effects of already processed
// events stand.
func (h *Handler) Enforce(s *discordgo.Session, states []*discordgo.VoiceState) {
	batchID := xid.New().String()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Aborted voice moderation batch", "BatchID", batchID, "Panic", r)
		}
	}()

	for _, vs := range states {
		if vs == nil {
			continue
		}
		h.enforceOne(s, vs)
	}
}

func (h *Handler) enforceOne(s *discordgo.Session, vs *discordgo.VoiceState) {
	p := h.GetPrefs(vs.UserID)
	if !p.Active() {
		return
	}

	// An empty channel means the user left voice, so there is no
	// scope to act in.
	if vs.ChannelID == "" {
		return
	}

	guildID, err := h.res.GuildOf(s, vs.ChannelID)
	if err != nil || guildID == "" {
		return
	}

	canMove := h.perms.CanMove(s, vs.ChannelID)
	canMute := h.perms.CanMute(s, vs.ChannelID)
	canDeafen := h.perms.CanDeafen(s, vs.ChannelID)

	// The disconnect flag fires on every update that reports the user
	// inside a channel, so someone who keeps rejoining keeps getting
	// removed.
	if p.Disconnect && canMove {
		h.mod.Disconnect(s, guildID, vs.UserID)
	}

	if p.Mute && canMute && !vs.Mute {
		h.mod.SetMute(s, guildID, vs.UserID, true)
	}

	if p.Deafen && canDeafen && !vs.Deaf {
		h.mod.SetDeafen(s, guildID, vs.UserID, true)
	}
}

func (h *Handler) Sweep(s *discordgo.Session) {
	if s.State == nil {
		return
	}

	for _, g := range s.State.Guilds {
		if len(g.VoiceStates) == 0 {
			continue
		}
		h.Enforce(s, g.VoiceStates)
	}
}

func (h *Handler) ToggleMute(s *discordgo.Session, invokingGuildID, userID string) bool {
	p := h.GetPrefs(userID)
	p.Mute = !p.Mute
	h.SetPrefs(userID, p)

	if p.Mute {
		// The user may be sitting in a voice channel of a different
		// guild than the one the toggle came from, so the guild is
		// derived from their current voice state.
		if vs, err := h.res.FindVoiceState(s, userID); err == nil && vs.ChannelID != "" {
			h.mod.SetMute(s, vs.GuildID, userID, true)
		}
	} else {
		h.mod.SetMute(s, invokingGuildID, userID, false)
	}

	return p.Mute
}

func (h *Handler) ToggleDeafen(s *discordgo.Session, invokingGuildID, userID string) bool {
	p := h.GetPrefs(userID)
	p.Deafen = !p.Deafen
	h.SetPrefs(userID, p)

	if p.Deafen {
		if vs, err := h.res.FindVoiceState(s, userID); err == nil && vs.ChannelID != "" {
			h.mod.SetDeafen(s, vs.GuildID, userID, true)
		}
	} else {
		h.mod.SetDeafen(s, invokingGuildID, userID, false)
	}

	return p.Deafen
}

func (h *Handler) ToggleDisconnect(s *discordgo.Session, invokingGuildID, userID string) bool {
	p := h.GetPrefs(userID)
	p.Disconnect = !p.Disconnect
	h.SetPrefs(userID, p)

	// Unlike mute and deafen, lifting the disconnect flag has nothing
	// to undo, so only the enable path issues a call.
	if p.Disconnect {
		if vs, err := h.res.FindVoiceState(s, userID); err == nil && vs.ChannelID != "" {
			h.mod.Disconnect(s, vs.GuildID, userID)
		}
	}

	return p.Disconnect
}

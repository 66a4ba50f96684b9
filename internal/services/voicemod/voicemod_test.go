package voicemod

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/zekrotja/ken"

	"github.com/zekurio/warden/internal/models"
)

const (
	guild1   = "362162947738566657"
	guild2   = "546528394882121216"
	channel1 = "362169338327334913"
	channel2 = "546528456041889792"
	user1    = "352002717285089280"
	user2    = "531861558834495498"
)

type fakeGate struct {
	move, mute, deafen bool
	queries            int
}

func (g *fakeGate) Before(ctx *ken.Ctx) (bool, error) { return true, nil }

func (g *fakeGate) CanMove(s *discordgo.Session, channelID string) bool {
	g.queries++
	return g.move
}

func (g *fakeGate) CanMute(s *discordgo.Session, channelID string) bool {
	g.queries++
	return g.mute
}

func (g *fakeGate) CanDeafen(s *discordgo.Session, channelID string) bool {
	g.queries++
	return g.deafen
}

type call struct {
	op      string
	guildID string
	userID  string
	value   bool
}

type fakeModerator struct {
	calls []call
	fail  bool
}

func (m *fakeModerator) Disconnect(s *discordgo.Session, guildID, userID string) bool {
	m.calls = append(m.calls, call{op: "disconnect", guildID: guildID, userID: userID})
	return !m.fail
}

func (m *fakeModerator) SetMute(s *discordgo.Session, guildID, userID string, mute bool) bool {
	m.calls = append(m.calls, call{op: "mute", guildID: guildID, userID: userID, value: mute})
	return !m.fail
}

func (m *fakeModerator) SetDeafen(s *discordgo.Session, guildID, userID string, deaf bool) bool {
	m.calls = append(m.calls, call{op: "deafen", guildID: guildID, userID: userID, value: deaf})
	return !m.fail
}

func (m *fakeModerator) ops(op string) (n int) {
	for _, c := range m.calls {
		if c.op == op {
			n++
		}
	}
	return
}

type fakeResolver struct {
	guilds  map[string]string                 // channelID -> guildID
	voice   map[string]*discordgo.VoiceState  // userID -> current voice state
	panicOn string                            // channel ID that blows up resolution
}

func (r *fakeResolver) GuildOf(s *discordgo.Session, channelID string) (string, error) {
	if channelID == r.panicOn {
		panic("resolver exploded")
	}
	g, ok := r.guilds[channelID]
	if !ok {
		return "", errors.New("unknown channel")
	}
	return g, nil
}

func (r *fakeResolver) FindVoiceState(s *discordgo.Session, userID string) (*discordgo.VoiceState, error) {
	vs, ok := r.voice[userID]
	if !ok {
		return nil, errors.New("voice state not found")
	}
	return vs, nil
}

func newTestHandler() (*Handler, *fakeGate, *fakeModerator, *fakeResolver) {
	gate := &fakeGate{move: true, mute: true, deafen: true}
	mod := &fakeModerator{}
	res := &fakeResolver{
		guilds: map[string]string{
			channel1: guild1,
			channel2: guild2,
		},
		voice: map[string]*discordgo.VoiceState{},
	}

	h := &Handler{
		perms: gate,
		mod:   mod,
		res:   res,
		prefs: make(map[string]models.VoiceModPrefs),
	}

	return h, gate, mod, res
}

func TestGetPrefsDefault(t *testing.T) {
	h, _, _, _ := newTestHandler()

	p := h.GetPrefs(user1)
	assert.Equal(t, models.VoiceModPrefs{}, p)
	assert.False(t, p.Active())

	// repeated reads are stable
	assert.Equal(t, p, h.GetPrefs(user1))

	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true})
	assert.True(t, h.GetPrefs(user1).Mute)
	assert.False(t, h.GetPrefs(user1).Deafen)
}

func TestEnforceMuteScenario(t *testing.T) {
	h, _, mod, _ := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true})

	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1, ChannelID: channel1},
	})

	assert.Equal(t, []call{{op: "mute", guildID: guild1, userID: user1, value: true}}, mod.calls)
}

func TestEnforceIdempotence(t *testing.T) {
	h, _, mod, _ := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true, Deafen: true})

	// already muted and deafened, nothing to correct
	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1, ChannelID: channel1, Mute: true, Deaf: true},
		{UserID: user1, ChannelID: channel1, Mute: true, Deaf: true},
	})

	assert.Empty(t, mod.calls)
}

func TestEnforceGating(t *testing.T) {
	h, gate, mod, _ := newTestHandler()
	gate.move = false
	gate.mute = false
	gate.deafen = false

	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true, Deafen: true, Disconnect: true})

	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1, ChannelID: channel1},
	})

	assert.Empty(t, mod.calls)
	assert.Equal(t, 3, gate.queries)
}

func TestEnforceUntrackedFastPath(t *testing.T) {
	h, gate, mod, _ := newTestHandler()

	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1, ChannelID: channel1},
		{UserID: user2, ChannelID: channel2, Mute: true},
	})

	assert.Zero(t, gate.queries)
	assert.Empty(t, mod.calls)
}

func TestEnforceRepeatedDeterrence(t *testing.T) {
	h, _, mod, _ := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Disconnect: true})

	// the user keeps rejoining, every event gets them removed again
	for i := 0; i < 3; i++ {
		h.Enforce(nil, []*discordgo.VoiceState{
			{UserID: user1, ChannelID: channel1},
		})
	}

	assert.Equal(t, 3, mod.ops("disconnect"))
}

func TestEnforceAllRulesIndependently(t *testing.T) {
	h, _, mod, _ := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true, Deafen: true, Disconnect: true})

	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1, ChannelID: channel1},
	})

	assert.Equal(t, 1, mod.ops("disconnect"))
	assert.Equal(t, 1, mod.ops("mute"))
	assert.Equal(t, 1, mod.ops("deafen"))
}

func TestEnforceSkipsUnresolvable(t *testing.T) {
	h, gate, mod, _ := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true})

	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1},                                 // left voice
		{UserID: user1, ChannelID: "808414882494967810"}, // unknown channel
	})

	assert.Zero(t, gate.queries)
	assert.Empty(t, mod.calls)
}

func TestEnforceBatchIsolation(t *testing.T) {
	h, _, mod, res := newTestHandler()
	res.panicOn = channel2

	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true})
	h.SetPrefs(user2, models.VoiceModPrefs{Mute: true})

	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user1, ChannelID: channel1}, // processed
		{UserID: user2, ChannelID: channel2}, // panics
		{UserID: user1, ChannelID: channel1}, // never reached
	})

	assert.Equal(t, []call{{op: "mute", guildID: guild1, userID: user1, value: true}}, mod.calls)

	// the handler stays healthy for the next batch
	res.panicOn = ""
	h.Enforce(nil, []*discordgo.VoiceState{
		{UserID: user2, ChannelID: channel2},
	})

	assert.Equal(t, 2, mod.ops("mute"))
}

func TestToggleMuteImmediate(t *testing.T) {
	h, _, mod, res := newTestHandler()
	res.voice[user1] = &discordgo.VoiceState{UserID: user1, GuildID: guild2, ChannelID: channel2}

	enabled := h.ToggleMute(nil, guild1, user1)

	assert.True(t, enabled)
	assert.True(t, h.GetPrefs(user1).Mute)
	assert.Equal(t, []call{{op: "mute", guildID: guild2, userID: user1, value: true}}, mod.calls)
}

func TestToggleMuteNoChannel(t *testing.T) {
	h, _, mod, _ := newTestHandler()

	enabled := h.ToggleMute(nil, guild1, user1)

	assert.True(t, enabled)
	assert.True(t, h.GetPrefs(user1).Mute)
	assert.Empty(t, mod.calls)
}

func TestToggleMuteOffScoping(t *testing.T) {
	h, _, mod, res := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true})
	// the user sits in another guild's channel, the un-mute still goes
	// to the invoking guild
	res.voice[user1] = &discordgo.VoiceState{UserID: user1, GuildID: guild2, ChannelID: channel2}

	enabled := h.ToggleMute(nil, guild1, user1)

	assert.False(t, enabled)
	assert.Equal(t, []call{{op: "mute", guildID: guild1, userID: user1, value: false}}, mod.calls)
}

func TestToggleDeafenOffScoping(t *testing.T) {
	h, _, mod, res := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Deafen: true})
	res.voice[user1] = &discordgo.VoiceState{UserID: user1, GuildID: guild2, ChannelID: channel2}

	enabled := h.ToggleDeafen(nil, guild1, user1)

	assert.False(t, enabled)
	assert.Equal(t, []call{{op: "deafen", guildID: guild1, userID: user1, value: false}}, mod.calls)
}

func TestToggleDeafenImmediate(t *testing.T) {
	h, _, mod, res := newTestHandler()
	res.voice[user1] = &discordgo.VoiceState{UserID: user1, GuildID: guild1, ChannelID: channel1}

	assert.True(t, h.ToggleDeafen(nil, guild1, user1))
	assert.Equal(t, []call{{op: "deafen", guildID: guild1, userID: user1, value: true}}, mod.calls)
}

func TestToggleDisconnect(t *testing.T) {
	h, _, mod, res := newTestHandler()
	res.voice[user1] = &discordgo.VoiceState{UserID: user1, GuildID: guild1, ChannelID: channel1}

	assert.True(t, h.ToggleDisconnect(nil, guild1, user1))
	assert.Equal(t, []call{{op: "disconnect", guildID: guild1, userID: user1}}, mod.calls)

	// turning the flag off has nothing to undo
	assert.False(t, h.ToggleDisconnect(nil, guild1, user1))
	assert.Len(t, mod.calls, 1)
}

func TestToggleOtherFlagsPreserved(t *testing.T) {
	h, _, _, _ := newTestHandler()
	h.SetPrefs(user1, models.VoiceModPrefs{Deafen: true, Disconnect: true})

	h.ToggleMute(nil, guild1, user1)

	p := h.GetPrefs(user1)
	assert.True(t, p.Mute)
	assert.True(t, p.Deafen)
	assert.True(t, p.Disconnect)
}

// The gateway dispatches every handler on its own goroutine while the
// sweep job, command toggles and the status endpoint run on yet
// others, so the preference map sees concurrent reads and writes. Run
// with -race.
func TestPrefsConcurrentAccess(t *testing.T) {
	h, _, _, _ := newTestHandler()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		// every unseen user materializes an entry, so this keeps
		// writing the map
		for i := 0; i < 500; i++ {
			h.Enforce(nil, []*discordgo.VoiceState{
				{UserID: strconv.Itoa(i), ChannelID: channel1},
			})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = h.TrackedUsers()
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			h.SetPrefs(user1, models.VoiceModPrefs{Mute: i%2 == 0})
		}
	}()

	wg.Wait()

	// the last write wins and the materialized entries stay inert
	assert.False(t, h.GetPrefs(user1).Mute)
	assert.Zero(t, h.TrackedUsers())
}

func TestTrackedUsers(t *testing.T) {
	h, _, _, _ := newTestHandler()
	assert.Zero(t, h.TrackedUsers())

	h.SetPrefs(user1, models.VoiceModPrefs{Mute: true})
	h.SetPrefs(user2, models.VoiceModPrefs{})
	h.GetPrefs("852813245815324672") // materialized but inert

	assert.Equal(t, 1, h.TrackedUsers())
}

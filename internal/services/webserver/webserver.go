package webserver

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/valyala/fasthttp"

	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/services/voicemod"
)

// Webserver exposes a small status API over fasthttp.
type Webserver struct {
	cfg models.WebserverConfig
	s   *discordgo.Session
	vm  voicemod.VoiceModProvider

	srv     *fasthttp.Server
	started time.Time
}

func New(cfg models.WebserverConfig, s *discordgo.Session, vm voicemod.VoiceModProvider) *Webserver {
	w := &Webserver{
		cfg:     cfg,
		s:       s,
		vm:      vm,
		started: time.Now(),
	}

	w.srv = &fasthttp.Server{
		Handler: w.handleRequest,
	}

	return w
}

func (w *Webserver) ListenAndServe() error {
	return w.srv.ListenAndServe(w.cfg.Addr)
}

func (w *Webserver) Shutdown() error {
	return w.srv.Shutdown()
}

func (w *Webserver) handleRequest(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/status":
		w.handleStatus(ctx)
	default:
		respondJSON(ctx, fasthttp.StatusNotFound, models.Error{
			Error: "not found",
			Code:  fasthttp.StatusNotFound,
		})
	}
}

func (w *Webserver) handleStatus(ctx *fasthttp.RequestCtx) {
	guilds := 0
	if w.s != nil && w.s.State != nil {
		guilds = len(w.s.State.Guilds)
	}

	respondJSON(ctx, fasthttp.StatusOK, models.StatusPayload{
		Code:         fasthttp.StatusOK,
		Guilds:       guilds,
		TrackedUsers: w.vm.TrackedUsers(),
		Uptime:       time.Since(w.started).Round(time.Second).String(),
	})
}

func respondJSON(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

package middlewares

import (
	"time"

	"github.com/zekrotja/ken"
)

// CommandCooldown is implemented by commands that enforce a per-user
// cooldown between invocations.
type CommandCooldown interface {
	// Cooldown returns the cooldown of the command in seconds.
	Cooldown() int
}

type CooldownMiddleware struct {
	lastInvoked map[string]map[string]time.Time // map[userID]map[commandName]lastInvocation
}

func NewCooldownMiddleware() *CooldownMiddleware {
	return &CooldownMiddleware{
		lastInvoked: make(map[string]map[string]time.Time),
	}
}

func (m *CooldownMiddleware) Before(ctx *ken.Ctx) (next bool, err error) {
	next = true

	cmd, ok := ctx.Command.(CommandCooldown)
	if !ok {
		return
	}

	if m.isOnCooldown(ctx.User().ID, ctx.Command.Name(), cmd.Cooldown()) {
		next = false
		err = ctx.RespondError("You are on cooldown.", "")
	}

	return
}

func (m *CooldownMiddleware) isOnCooldown(userID, commandName string, cooldown int) bool {
	if _, ok := m.lastInvoked[userID]; !ok {
		m.lastInvoked[userID] = make(map[string]time.Time)
	}

	last, ok := m.lastInvoked[userID][commandName]
	if ok && time.Since(last) < time.Duration(cooldown)*time.Second {
		return true
	}

	m.lastInvoked[userID][commandName] = time.Now()
	return false
}

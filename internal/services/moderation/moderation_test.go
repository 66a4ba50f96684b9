package moderation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

// failingSession builds a session whose every REST call fails at the
// transport level.
func failingSession() *discordgo.Session {
	return &discordgo.Session{
		Client:      &http.Client{Transport: failingTransport{}},
		Ratelimiter: discordgo.NewRatelimiter(),
	}
}

func TestMutationsSwallowTransportErrors(t *testing.T) {
	m := &Moderator{}
	s := failingSession()

	assert.False(t, m.Disconnect(s, "362162947738566657", "352002717285089280"))
	assert.False(t, m.SetMute(s, "362162947738566657", "352002717285089280", true))
	assert.False(t, m.SetDeafen(s, "362162947738566657", "352002717285089280", true))
}

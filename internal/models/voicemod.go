package models

// VoiceModPrefs holds the permanent voice moderation flags kept for a
// single user. A record with all flags unset is inert and equivalent to
// the user not being tracked at all.
type VoiceModPrefs struct {
	Mute       bool
	Deafen     bool
	Disconnect bool
}

// Active reports whether any of the flags is set.
func (p VoiceModPrefs) Active() bool {
	return p.Mute || p.Deafen || p.Disconnect
}

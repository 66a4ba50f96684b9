package models

var DefaultConfig = Config{
	Discord: DiscordConfig{
		Token:      "",
		OwnerID:    "",
		GuildLimit: -1,
	},
	VoiceMod: VoiceModConfig{
		SweepSchedule: "@every 5m",
	},
	Webserver: WebserverConfig{
		Enabled: false,
		Addr:    ":8080",
	},
}

type DiscordConfig struct {
	Token      string
	OwnerID    string
	GuildLimit int
}

type VoiceModConfig struct {
	// SweepSchedule is the cron spec for the periodic re-enforcement
	// of voice moderation preferences. An empty spec disables the sweep.
	SweepSchedule string
}

type WebserverConfig struct {
	Enabled bool
	Addr    string
}

type Config struct {
	Discord   DiscordConfig
	VoiceMod  VoiceModConfig
	Webserver WebserverConfig
}

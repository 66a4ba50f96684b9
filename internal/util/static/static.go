package static

import "github.com/bwmarrin/discordgo"

const (
	ColorDefault = 0x7169ba
	ColorRed     = 0xff2b66
	ColorGreen   = 0x92f026
	ColorYellow  = 0xffff38
	ColorGray    = 0x929292

	OAuthScopes = "bot%20applications.commands"

	InvitePermission = discordgo.PermissionEmbedLinks |
		discordgo.PermissionVoiceMoveMembers |
		discordgo.PermissionVoiceMuteMembers |
		discordgo.PermissionVoiceDeafenMembers

	Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates
)

// Names of the dependency injection container entries.
const (
	DiConfig         = "config"
	DiDiscord        = "discord"
	DiPermissions    = "permissions"
	DiModeration     = "moderation"
	DiVoiceMod       = "voicemod"
	DiCommandHandler = "cmdhandler"
	DiScheduler      = "scheduler"
	DiWebserver      = "webserver"
)

package slashcommands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/zekrotja/ken"

	"github.com/zekurio/warden/internal/middlewares"
	"github.com/zekurio/warden/internal/services/permissions"
	"github.com/zekurio/warden/internal/services/voicemod"
	"github.com/zekurio/warden/internal/util/static"
)

type VoiceMod struct {
	ken.EphemeralCommand
}

var (
	_ ken.SlashCommand            = (*VoiceMod)(nil)
	_ permissions.CommandPerms    = (*VoiceMod)(nil)
	_ middlewares.CommandCooldown = (*VoiceMod)(nil)
)

func (c *VoiceMod) Name() string {
	return "voicemod"
}

func (c *VoiceMod) Description() string {
	return "Manage permanent voice moderation for a user."
}

func (c *VoiceMod) Version() string {
	return "1.0.0"
}

func (c *VoiceMod) Type() discordgo.ApplicationCommandType {
	return discordgo.ChatApplicationCommand
}

func (c *VoiceMod) Options() []*discordgo.ApplicationCommandOption {
	userOption := func(desc string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: desc,
				Required:    true,
			},
		}
	}

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "mute",
			Description: "Toggle the permanent server mute for a user.",
			Options:     userOption("The user to keep muted."),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "deafen",
			Description: "Toggle the permanent server deafen for a user.",
			Options:     userOption("The user to keep deafened."),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "disconnect",
			Description: "Toggle the permanent voice disconnect for a user.",
			Options:     userOption("The user to keep out of voice."),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "status",
			Description: "Show the active voice moderation flags of a user.",
			Options:     userOption("The user to inspect."),
		},
	}
}

func (c *VoiceMod) Perm() int64 {
	return discordgo.PermissionVoiceMuteMembers |
		discordgo.PermissionVoiceDeafenMembers |
		discordgo.PermissionVoiceMoveMembers
}

func (c *VoiceMod) Cooldown() int {
	return 3
}

func (c *VoiceMod) Run(ctx ken.Context) (err error) {
	if err = ctx.Defer(); err != nil {
		return
	}

	err = ctx.HandleSubCommands(
		ken.SubCommandHandler{Name: "mute", Run: c.mute},
		ken.SubCommandHandler{Name: "deafen", Run: c.deafen},
		ken.SubCommandHandler{Name: "disconnect", Run: c.disconnect},
		ken.SubCommandHandler{Name: "status", Run: c.status},
	)

	return
}

func (c *VoiceMod) mute(ctx ken.SubCommandContext) (err error) {
	vm := ctx.Get(static.DiVoiceMod).(voicemod.VoiceModProvider)
	user := ctx.Options().GetByName("user").UserValue(ctx)

	enabled := vm.ToggleMute(ctx.GetSession(), ctx.GetEvent().GuildID, user.ID)

	return c.respondToggle(ctx, "mute", user, enabled)
}

func (c *VoiceMod) deafen(ctx ken.SubCommandContext) (err error) {
	vm := ctx.Get(static.DiVoiceMod).(voicemod.VoiceModProvider)
	user := ctx.Options().GetByName("user").UserValue(ctx)

	enabled := vm.ToggleDeafen(ctx.GetSession(), ctx.GetEvent().GuildID, user.ID)

	return c.respondToggle(ctx, "deafen", user, enabled)
}

func (c *VoiceMod) disconnect(ctx ken.SubCommandContext) (err error) {
	vm := ctx.Get(static.DiVoiceMod).(voicemod.VoiceModProvider)
	user := ctx.Options().GetByName("user").UserValue(ctx)

	enabled := vm.ToggleDisconnect(ctx.GetSession(), ctx.GetEvent().GuildID, user.ID)

	return c.respondToggle(ctx, "disconnect", user, enabled)
}

func (c *VoiceMod) status(ctx ken.SubCommandContext) (err error) {
	vm := ctx.Get(static.DiVoiceMod).(voicemod.VoiceModProvider)
	user := ctx.Options().GetByName("user").UserValue(ctx)

	prefs := vm.GetPrefs(user.ID)

	return ctx.FollowUpEmbed(&discordgo.MessageEmbed{
		Color:       static.ColorDefault,
		Title:       "Voice moderation",
		Description: fmt.Sprintf("Active flags for %s", user.Mention()),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Mute", Value: onOff(prefs.Mute), Inline: true},
			{Name: "Deafen", Value: onOff(prefs.Deafen), Inline: true},
			{Name: "Disconnect", Value: onOff(prefs.Disconnect), Inline: true},
		},
	}).Send().Error
}

func (c *VoiceMod) respondToggle(ctx ken.SubCommandContext, action string, user *discordgo.User, enabled bool) error {
	state := "disabled"
	color := static.ColorGreen
	if enabled {
		state = "enabled"
		color = static.ColorRed
	}

	return ctx.FollowUpEmbed(&discordgo.MessageEmbed{
		Color:       color,
		Description: fmt.Sprintf("Permanent %s for %s is now **%s**.", action, user.Mention(), state),
	}).Send().Error
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

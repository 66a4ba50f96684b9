package permissions

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sarulabs/di/v2"
	"github.com/zekrotja/ken"
)

type Permissions struct{}

var _ Provider = (*Permissions)(nil)

func InitPermissions(ctn di.Container) *Permissions {
	return &Permissions{}
}

func (p *Permissions) Before(ctx *ken.Ctx) (next bool, err error) {
	cmd, ok := ctx.Command.(CommandPerms)
	if !ok {
		next = true
		return
	}

	if ctx.User() == nil {
		return
	}

	if ctx.GetEvent().GuildID == "" {
		err = ctx.RespondError("This command can only be used inside a guild.", "")
		return
	}

	userPerms, err := ctx.GetSession().UserChannelPermissions(ctx.User().ID, ctx.GetEvent().ChannelID)
	if err != nil {
		return false, err
	}

	if userPerms&cmd.Perm() != cmd.Perm() {
		err = ctx.RespondError("You are not permitted to use this command!", "Missing Permission")
		return
	}

	next = true
	return
}

func (p *Permissions) CanMove(s *discordgo.Session, channelID string) bool {
	return p.botHas(s, channelID, discordgo.PermissionVoiceMoveMembers)
}

func (p *Permissions) CanMute(s *discordgo.Session, channelID string) bool {
	return p.botHas(s, channelID, discordgo.PermissionVoiceMuteMembers)
}

func (p *Permissions) CanDeafen(s *discordgo.Session, channelID string) bool {
	return p.botHas(s, channelID, discordgo.PermissionVoiceDeafenMembers)
}

// botHas resolves the bot's effective permissions in the channel at
// call time. Results are never cached since permissions can change
// between any two checks.
func (p *Permissions) botHas(s *discordgo.Session, channelID string, perm int64) bool {
	if s.State == nil || s.State.User == nil {
		return false
	}

	chPerms, err := s.UserChannelPermissions(s.State.User.ID, channelID)
	if err != nil {
		return false
	}

	return chPerms&perm == perm
}

package inits

import (
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/sarulabs/di/v2"
	"github.com/zekrotja/ken"

	"github.com/zekurio/warden/internal/middlewares"
	"github.com/zekurio/warden/internal/services/permissions"
	"github.com/zekurio/warden/internal/slashcommands"
	"github.com/zekurio/warden/internal/util/static"
)

func InitKen(ctn di.Container) (*ken.Ken, error) {
	s := ctn.Get(static.DiDiscord).(*discordgo.Session)

	k, err := ken.New(s, ken.Options{
		DependencyProvider: ctn,
		EmbedColors: ken.EmbedColors{
			Default: static.ColorDefault,
			Error:   static.ColorRed,
		},
		OnSystemError: func(context string, err error, args ...interface{}) {
			log.With(err).Error("Ken system error", "Context", context)
		},
		OnCommandError: func(err error, ctx *ken.Ctx) {
			log.With(err).Error("Command error", "Command", ctx.Command.Name())
		},
	})
	if err != nil {
		return nil, err
	}

	err = k.RegisterCommands(
		new(slashcommands.VoiceMod),
	)
	if err != nil {
		return nil, err
	}

	err = k.RegisterMiddlewares(
		ctn.Get(static.DiPermissions).(permissions.Provider),
		middlewares.NewCooldownMiddleware(),
	)
	if err != nil {
		return nil, err
	}

	return k, nil
}

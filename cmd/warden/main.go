package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/sarulabs/di/v2"
	"github.com/zekrotja/ken"

	"github.com/zekurio/warden/internal/inits"
	"github.com/zekurio/warden/internal/models"
	"github.com/zekurio/warden/internal/services/config"
	"github.com/zekurio/warden/internal/services/moderation"
	"github.com/zekurio/warden/internal/services/permissions"
	"github.com/zekurio/warden/internal/services/scheduler"
	"github.com/zekurio/warden/internal/services/voicemod"
	"github.com/zekurio/warden/internal/services/webserver"
	"github.com/zekurio/warden/internal/util/embedded"
	"github.com/zekurio/warden/internal/util/static"
)

var (
	flagConfigPath = flag.String("c", "config.toml", "Path to config file")
)

func main() {

	flag.Parse()

	_ = godotenv.Load()

	if embedded.Release == "true" {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	diBuilder, err := di.NewBuilder()
	if err != nil {
		log.With(err).Fatal("Failed to create DI builder")
	}

	// Config
	err = diBuilder.Add(di.Def{
		Name: static.DiConfig,
		Build: func(ctn di.Container) (interface{}, error) {
			return config.Parse(*flagConfigPath, "WARDEN_", models.DefaultConfig)
		},
	})
	if err != nil {
		log.With(err).Fatal("Config parsing failed")
	}

	// Permissions
	err = diBuilder.Add(di.Def{
		Name: static.DiPermissions,
		Build: func(ctn di.Container) (interface{}, error) {
			return permissions.InitPermissions(ctn), nil
		},
	})
	if err != nil {
		log.With(err).Fatal("Permissions creation failed")
	}

	// Moderation client
	err = diBuilder.Add(di.Def{
		Name: static.DiModeration,
		Build: func(ctn di.Container) (interface{}, error) {
			return moderation.InitModerator(ctn), nil
		},
	})
	if err != nil {
		log.With(err).Fatal("Moderation client creation failed")
	}

	// Voice moderation
	err = diBuilder.Add(di.Def{
		Name: static.DiVoiceMod,
		Build: func(ctn di.Container) (interface{}, error) {
			return voicemod.InitVoiceMod(ctn), nil
		},
	})
	if err != nil {
		log.With(err).Fatal("Voice moderation creation failed")
	}

	// Scheduler
	err = diBuilder.Add(di.Def{
		Name: static.DiScheduler,
		Build: func(ctn di.Container) (interface{}, error) {
			return inits.InitScheduler(ctn), nil
		},
		Close: func(obj interface{}) error {
			obj.(scheduler.Provider).Stop()
			return nil
		},
	})
	if err != nil {
		log.With(err).Fatal("Scheduler creation failed")
	}

	// Discord Session
	err = diBuilder.Add(di.Def{
		Name: static.DiDiscord,
		Build: func(ctn di.Container) (interface{}, error) {
			return inits.InitDiscord(ctn)
		},
		Close: func(obj interface{}) error {
			return obj.(*discordgo.Session).Close()
		},
	})
	if err != nil {
		log.With(err).Fatal("Discord creation failed")
	}

	// Ken
	err = diBuilder.Add(di.Def{
		Name: static.DiCommandHandler,
		Build: func(ctn di.Container) (interface{}, error) {
			return inits.InitKen(ctn)
		},
		Close: func(obj interface{}) error {
			return obj.(*ken.Ken).Unregister()
		},
	})
	if err != nil {
		log.With(err).Fatal("Command handler creation failed")
	}

	// Webserver
	err = diBuilder.Add(di.Def{
		Name: static.DiWebserver,
		Build: func(ctn di.Container) (interface{}, error) {
			return inits.InitWebserver(ctn)
		},
		Close: func(obj interface{}) error {
			return obj.(*webserver.Webserver).Shutdown()
		},
	})
	if err != nil {
		log.With(err).Fatal("Webserver creation failed")
	}

	// Build dependency injection container
	ctn := diBuilder.Build()
	// Tear down dependency instances
	defer func(ctn di.Container) {
		err := ctn.DeleteWithSubContainers()
		if err != nil {
			log.With(err).Fatal("Failed to tear down dependency instances")
		}
	}(ctn)

	ctn.Get(static.DiCommandHandler)

	s := ctn.Get(static.DiDiscord).(*discordgo.Session)
	err = s.Open()
	if err != nil {
		log.With(err).Fatal("Failed to open Discord connection")
	}

	cfg := ctn.Get(static.DiConfig).(models.Config)
	if cfg.Webserver.Enabled {
		ctn.Get(static.DiWebserver)
	}

	// Block main go routine until one of the following
	// specified exit sys calls occure.
	log.Info("Started event loop. Stop with CTRL-C...")

	log.Info("Initialization finished")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc

}

package main

import (
	"log"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/config"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/bot"
	dbpkg "github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/db"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/web"

	flag "github.com/spf13/pflag"
)

func main() {
	deploy := flag.Bool("deploy", false, "register the slash commands with Discord and exit")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *deploy {
		b, err := bot.NewBot(cfg, nil)
		if err != nil {
			log.Fatalf("Failed to initialize bot: %v", err)
		}
		if err := b.Deploy(); err != nil {
			log.Fatalf("Failed to register commands: %v", err)
		}
		return
	}

	DB := dbpkg.InitDatabase(cfg)

	go web.StartWS(DB, cfg.ListenAddr)

	b, err := bot.NewBot(cfg, DB)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
}

package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/config"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"
	plH "github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/playerHandlers"
	rcH "github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/raceHandlers"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

type handlerFunc func(i *discordgo.InteractionCreate)

// HandlersConfig groups the entity handlers.
type HandlersConfig struct {
	PlayerHandler plH.Handler
	RaceHandler   rcH.Handler
}

// Bot wires the Discord session, the database and the command handlers
// together. The command tables are built once in NewBot and never
// mutated afterwards.
type Bot struct {
	Session  *discordgo.Session
	Config   *config.Config
	DB       *gorm.DB
	Handlers HandlersConfig

	replyTo       models.Session
	commands      map[string]handlerFunc
	autocompletes map[string]handlerFunc
}

// NewBot creates and initializes a new bot.
func NewBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		Session: session,
		Config:  cfg,
		DB:      db,
	}
	bot.initHandlers(session)
	bot.initRoutes()
	return bot, nil
}

// initHandlers initializes the handlers, passing them their dependencies.
func (b *Bot) initHandlers(session models.Session) {
	handler := models.Handler{DB: b.DB, Session: session}
	b.Handlers.PlayerHandler = plH.Handler{Handler: handler, WebsiteURL: b.Config.WebsiteURL}
	b.Handlers.RaceHandler = rcH.Handler{Handler: handler}
	b.replyTo = session
}

func (b *Bot) initRoutes() {
	b.commands = map[string]handlerFunc{
		"newuser":         b.Handlers.PlayerHandler.NewUser,
		"generate_apikey": b.Handlers.PlayerHandler.GenerateAPIKey,
		"newrace":         b.Handlers.RaceHandler.NewRace,
		"c_race":          b.Handlers.RaceHandler.CasualRace,
		"m_race":          b.Handlers.RaceHandler.MogiRace,
		"t_race":          b.Handlers.RaceHandler.TournamentRace,
		"w_race":          b.Handlers.RaceHandler.WarRace,
		"delete_race":     b.Handlers.RaceHandler.DeleteRace,
	}
	b.autocompletes = map[string]handlerFunc{
		"newrace": b.Handlers.RaceHandler.AutocompleteTrack,
		"c_race":  b.Handlers.RaceHandler.AutocompleteTrack,
		"m_race":  b.Handlers.RaceHandler.AutocompleteTrack,
		"t_race":  b.Handlers.RaceHandler.AutocompleteTrack,
		"w_race":  b.Handlers.RaceHandler.AutocompleteTrack,
	}
}

// Run opens the gateway connection and serves interactions until the
// process is interrupted.
func (b *Bot) Run() error {
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.dispatch(i)
	})

	if err := b.Session.Open(); err != nil {
		return err
	}
	log.Printf("Logged in as %s", b.Session.State.User.Username)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	return b.Session.Close()
}

// dispatch resolves the handler for an interaction and invokes it. A
// panicking handler is converted into a generic error reply.
func (b *Bot) dispatch(i *discordgo.InteractionCreate) {
	var handler handlerFunc
	var ok bool

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if handler, ok = b.commands[name]; !ok {
			log.Printf("No handler registered for command %q", name)
			return
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if handler, ok = b.autocompletes[i.ApplicationCommandData().Name]; !ok {
			return
		}
	default:
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Handler for %q panicked: %v", i.ApplicationCommandData().Name, r)
			if i.Type == discordgo.InteractionApplicationCommand {
				b.replyError(i)
			}
		}
	}()
	handler(i)
}

// replyError sends the generic failure message: as the initial reply if
// none was sent yet, otherwise as an ephemeral follow-up.
func (b *Bot) replyError(i *discordgo.InteractionCreate) {
	err := b.replyTo.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: models.GenericFailure,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}
	_, err = b.replyTo.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: models.GenericFailure,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("Failed to send error reply: %v", err)
	}
}

// Deploy synchronizes the command schemas with Discord. It is a one-shot
// operation, separate from runtime request handling.
func (b *Bot) Deploy() error {
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, b.Config.GuildID, Commands())
	if err != nil {
		return err
	}
	log.Printf("Successfully registered %d application commands", len(registered))
	return nil
}

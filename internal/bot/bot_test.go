package bot

import (
	"errors"
	"testing"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/config"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"

	"github.com/bwmarrin/discordgo"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSession struct {
	responses  []*discordgo.InteractionResponse
	followups  []*discordgo.WebhookParams
	respondErr error
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func newTestBot(t *testing.T) (*Bot, *fakeSession) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Player{}, &models.Race{}))

	session := &fakeSession{}
	bot := &Bot{
		Config: &config.Config{WebsiteURL: "https://example.com"},
		DB:     db,
	}
	bot.initHandlers(session)
	bot.initRoutes()
	return bot, session
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Data:   discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
		Member: &discordgo.Member{User: &discordgo.User{ID: "1001", Username: "yoshi_main"}},
	}}
}

func TestDispatchRoutesCommand(t *testing.T) {
	bot, session := newTestBot(t)

	bot.dispatch(commandInteraction("newuser", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "name",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: "Yoshi",
	}))

	require.Len(t, session.responses, 1)
	assert.Contains(t, session.responses[0].Data.Content, "New User created")

	var count int64
	require.NoError(t, bot.DB.Model(&models.Player{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDispatchRoutesAutocomplete(t *testing.T) {
	bot, session := newTestBot(t)

	bot.dispatch(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommandAutocomplete,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "m_race",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "track", Type: discordgo.ApplicationCommandOptionString, Value: "MK", Focused: true},
			},
		},
		Member: &discordgo.Member{User: &discordgo.User{ID: "1001"}},
	}})

	require.Len(t, session.responses, 1)
	assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, session.responses[0].Type)
}

func TestDispatchUnknownCommand(t *testing.T) {
	bot, session := newTestBot(t)

	bot.dispatch(commandInteraction("no_such_command"))

	assert.Empty(t, session.responses)
}

func TestDispatchIgnoresOtherInteractionTypes(t *testing.T) {
	bot, session := newTestBot(t)

	bot.dispatch(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionPing,
	}})

	assert.Empty(t, session.responses)
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	bot, session := newTestBot(t)
	bot.commands = map[string]handlerFunc{
		"boom": func(i *discordgo.InteractionCreate) { panic("boom") },
	}

	bot.dispatch(commandInteraction("boom"))

	require.Len(t, session.responses, 1)
	assert.Equal(t, models.GenericFailure, session.responses[0].Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, session.responses[0].Data.Flags)
}

func TestReplyErrorFallsBackToFollowup(t *testing.T) {
	bot, session := newTestBot(t)
	session.respondErr = errors.New("interaction already acknowledged")

	bot.replyError(commandInteraction("newuser"))

	require.Len(t, session.followups, 1)
	assert.Equal(t, models.GenericFailure, session.followups[0].Content)
}

func TestEveryCommandHasAHandler(t *testing.T) {
	bot, _ := newTestBot(t)

	for _, cmd := range Commands() {
		assert.Contains(t, bot.commands, cmd.Name)

		for _, opt := range cmd.Options {
			if opt.Autocomplete {
				assert.Contains(t, bot.autocompletes, cmd.Name,
					"command %s declares autocomplete", cmd.Name)
			}
		}
	}
}

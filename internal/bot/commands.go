package bot

import (
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"

	"github.com/bwmarrin/discordgo"
)

// Commands returns the slash command schemas the bot serves. Deploy
// pushes these to Discord; dispatch routes by the same names.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "newuser",
			Description: "Creates new user on race-tracker website",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Display Name for race-tracker website",
					Required:    true,
					MaxLength:   50,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Team for race-tracker website",
					MaxLength:   50,
				},
			},
		},
		{
			Name:        "generate_apikey",
			Description: "Generates an API Key for use on race-tracker website",
		},
		newRaceCommand(),
		raceCommand("c_race", "Creates new casual race for user"),
		raceCommand("m_race", "Creates new mogi race for user"),
		raceCommand("t_race", "Creates new tournament race for user"),
		raceCommand("w_race", "Creates new war race for user"),
		{
			Name:        "delete_race",
			Description: "Deletes one of your races by its ID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "id",
					Description: "The Race ID to delete",
					Required:    true,
				},
			},
		},
	}
}

func newRaceCommand() *discordgo.ApplicationCommand {
	cmd := raceCommand("newrace", "Creates new race for user")
	cmd.Options = append(cmd.Options, &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: "The mode the race was played in",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: models.ModeCasual, Value: models.ModeCasual},
			{Name: models.ModeMogi, Value: models.ModeMogi},
			{Name: models.ModeTournament, Value: models.ModeTournament},
			{Name: models.ModeWar, Value: models.ModeWar},
		},
	})
	return cmd
}

func raceCommand(name, description string) *discordgo.ApplicationCommand {
	minResult := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "track",
				Description:  "The track the race was played on",
				Required:     true,
				MaxLength:    50,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "result",
				Description: "Your finishing position, 1 through 12",
				Required:    true,
				MinValue:    &minResult,
				MaxValue:    12,
			},
		},
	}
}

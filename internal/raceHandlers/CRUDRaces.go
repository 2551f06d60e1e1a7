package racehandlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/tracks"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

type Handler struct {
	models.Handler
}

var rankings = [...]string{
	"1st", "2nd", "3rd", "4th", "5th", "6th",
	"7th", "8th", "9th", "10th", "11th", "12th",
}

// ----------------------------------------------------------------------------
// Race creation
// ----------------------------------------------------------------------------

// NewRace handles /newrace, where the mode is a command option.
func (h *Handler) NewRace(i *discordgo.InteractionCreate) {
	h.createRace(i, models.OptionMap(i)["mode"].StringValue())
}

// CasualRace, MogiRace, TournamentRace and WarRace handle the shortcut
// commands that fix the mode implicitly.
func (h *Handler) CasualRace(i *discordgo.InteractionCreate)     { h.createRace(i, models.ModeCasual) }
func (h *Handler) MogiRace(i *discordgo.InteractionCreate)       { h.createRace(i, models.ModeMogi) }
func (h *Handler) TournamentRace(i *discordgo.InteractionCreate) { h.createRace(i, models.ModeTournament) }
func (h *Handler) WarRace(i *discordgo.InteractionCreate)        { h.createRace(i, models.ModeWar) }

func (h *Handler) createRace(i *discordgo.InteractionCreate, mode string) {
	options := models.OptionMap(i)

	track, ok := tracks.Resolve(options["track"].StringValue())
	if !ok {
		h.reply(i, "Invalid Track Name.")
		return
	}

	user := models.InteractionUser(i)
	var player models.Player
	if err := h.DB.Where("discord_id = ?", user.ID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.reply(i, "User does not exist, and cannot create races.  Use command /newuser.")
			return
		}
		log.Printf("Failed to look up player for discord user %s: %v", user.ID, err)
		h.reply(i, models.GenericFailure)
		return
	}

	race := models.Race{
		PlayerID:  player.ID,
		DiscordID: user.ID,
		Track:     track,
		Mode:      mode,
		Result:    int(options["result"].IntValue()),
	}
	if err := h.DB.Create(&race).Error; err != nil {
		log.Printf("Failed to create race for discord user %s: %v", user.ID, err)
		h.reply(i, models.GenericFailure)
		return
	}

	h.reply(i, fmt.Sprintf("Inserted Race ID: %d, %s on %s",
		race.ID, rankings[race.Result-1], tracks.DisplayName(track)))
}

// ----------------------------------------------------------------------------
// DeleteRace
// ----------------------------------------------------------------------------

// DeleteRace handles /delete_race. Only the user whose Discord ID is
// stored on the race may delete it.
func (h *Handler) DeleteRace(i *discordgo.InteractionCreate) {
	raceID := models.OptionMap(i)["id"].IntValue()

	var race models.Race
	if err := h.DB.Select("id", "discord_id").First(&race, raceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.reply(i, "Race ID does not exist.")
			return
		}
		log.Printf("Failed to look up race %d: %v", raceID, err)
		h.reply(i, models.GenericFailure)
		return
	}

	user := models.InteractionUser(i)
	if race.DiscordID != user.ID {
		h.reply(i, "User does not own this race.")
		return
	}

	if err := h.DB.Delete(&models.Race{}, raceID).Error; err != nil {
		log.Printf("Failed to delete race %d: %v", raceID, err)
		h.reply(i, models.GenericFailure)
		return
	}

	h.reply(i, fmt.Sprintf("Deleted Race of ID: %d", raceID))
}

// ----------------------------------------------------------------------------
// Track autocomplete
// ----------------------------------------------------------------------------

// AutocompleteTrack suggests canonical track abbreviations for the text
// typed so far. Failures are logged and never surfaced to the user.
func (h *Handler) AutocompleteTrack(i *discordgo.InteractionCreate) {
	var partial string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused {
			partial = opt.StringValue()
			break
		}
	}

	suggestions := tracks.Suggest(partial)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(suggestions))
	for _, abbrev := range suggestions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  abbrev,
			Value: abbrev,
		})
	}

	err := h.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Printf("Failed to send track suggestions: %v", err)
	}
}

// ----------------------------------------------------------------------------
// Reply helper
// ----------------------------------------------------------------------------

func (h *Handler) reply(i *discordgo.InteractionCreate, content string) {
	err := h.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("Failed to send reply: %v", err)
	}
}

package playerhandlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Handler struct {
	models.Handler
	WebsiteURL string
}

// ----------------------------------------------------------------------------
// NewUser
// ----------------------------------------------------------------------------

// NewUser handles /newuser: inserts a Player for the invoking Discord user
// and replies with their profile page on the race-tracker website.
func (h *Handler) NewUser(i *discordgo.InteractionCreate) {
	options := models.OptionMap(i)
	user := models.InteractionUser(i)

	player := models.Player{
		Name:        options["name"].StringValue(),
		DiscordID:   user.ID,
		DiscordName: user.Username,
	}
	if team, ok := options["team"]; ok {
		player.Team = team.StringValue()
	}

	if err := h.DB.Create(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			h.reply(i, "ERROR: User already exists")
			return
		}
		log.Printf("Failed to create player for discord user %s: %v", user.ID, err)
		h.reply(i, models.GenericFailure)
		return
	}

	h.reply(i, fmt.Sprintf("New User created, profile page %s/player/%d", h.WebsiteURL, player.ID))
}

// ----------------------------------------------------------------------------
// GenerateAPIKey
// ----------------------------------------------------------------------------

// GenerateAPIKey handles /generate_apikey: stores a fresh key on the
// invoker's Player row and replies with it, visible to the requester only.
func (h *Handler) GenerateAPIKey(i *discordgo.InteractionCreate) {
	user := models.InteractionUser(i)
	apiKey := strings.ReplaceAll(uuid.NewString(), "-", "")

	err := h.DB.Model(&models.Player{}).
		Where("discord_id = ?", user.ID).
		Update("api_key", apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			h.reply(i, "ERROR: Try again.")
			return
		}
		log.Printf("Failed to store API key for discord user %s: %v", user.ID, err)
		h.reply(i, models.GenericFailure)
		return
	}

	h.replyEphemeral(i, apiKey)
}

// ----------------------------------------------------------------------------
// Reply helpers
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

func (h *Handler) replyEphemeral(i *discordgo.InteractionCreate, content string) {
	err := h.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to send ephemeral reply: %v", err)
	}
}

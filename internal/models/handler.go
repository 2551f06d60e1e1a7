package models

import (
	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// Session is the subset of *discordgo.Session the command handlers touch,
// narrowed so tests can substitute a recording fake.
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Handler struct {
	DB      *gorm.DB
	Session Session
}

// GenericFailure is the uniform user-facing message for any failure that
// is not a validation error; the cause goes to the operator log instead.
const GenericFailure = "There was an error while executing this command!"

// InteractionUser returns the invoking user. Guild interactions carry it
// on Member, DM interactions directly on User.
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// OptionMap indexes a command interaction's options by name.
func OptionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	data := i.ApplicationCommandData()
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		options[opt.Name] = opt
	}
	return options
}

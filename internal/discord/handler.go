package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rayprastya/stop-playing/internal/domain"
	"github.com/rayprastya/stop-playing/internal/domain/contract"
	"go.uber.org/zap"
)

// Handler routes slash-command interactions to the disconnect service
type Handler struct {
	service contract.DisconnectService
	log     *zap.Logger
}

func NewHandler(service contract.DisconnectService, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// HandleInteraction is registered as a discordgo InteractionCreate handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	userID := interactionUserID(i)
	if userID == "" {
		h.log.Warn("interaction without a user", zap.String("command", data.Name))
		return
	}

	var text string
	switch data.Name {
	case "main":
		text = h.handleMain(userID, data.Options)
	case "timeleft":
		text = h.handleTimeLeft(userID)
	default:
		return
	}

	h.respond(s, i, text)
}

func (h *Handler) handleMain(userID string, options []*discordgo.ApplicationCommandInteractionDataOption) string {
	var target, currentLocal string
	for _, opt := range options {
		switch opt.Name {
		case "time":
			target = opt.StringValue()
		case "current_time":
			currentLocal = opt.StringValue()
		}
	}

	confirmation, err := h.service.Register(userID, target, currentLocal)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTime) {
			return "❌ Invalid time format. Use HH:MM, e.g. `23:30`."
		}
		h.log.Error("failed to register schedule", zap.String("user_id", userID), zap.Error(err))
		return "❌ Something went wrong, please try again."
	}
	return confirmation
}

func (h *Handler) handleTimeLeft(userID string) string {
	minutes, localTarget, err := h.service.TimeLeft(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSchedule) {
			return "❌ You have no auto-disconnect time set. Use `/main` to set one."
		}
		h.log.Error("failed to query time left", zap.String("user_id", userID), zap.Error(err))
		return "❌ Something went wrong, please try again."
	}
	return fmt.Sprintf("🕒 %d minutes left until your auto-disconnect at %s (your local time).", minutes, localTarget)
}

func (h *Handler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
		},
	})
	if err != nil {
		h.log.Error("failed to respond to interaction", zap.Error(err))
	}
}

// interactionUserID handles both guild (Member) and DM (User) interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

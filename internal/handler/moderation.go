package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/moderation"
)

// ModerationHandler serves /clear, /timeout, /banword and the banned-word
// message filter.
type ModerationHandler struct {
	store  *moderation.Store
	filter *moderation.Filter
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(store *moderation.Store, filter *moderation.Filter) *ModerationHandler {
	return &ModerationHandler{store: store, filter: filter}
}

// HandleClear handles /clear: bulk-deletes the last N messages in the
// channel.
func (h *ModerationHandler) HandleClear(s *discordgo.Session, i *discordgo.InteractionCreate) {
	count := int(optionMap(i.ApplicationCommandData().Options)["nombre"].IntValue())

	msgs, err := s.ChannelMessages(i.ChannelID, count, "", "", "")
	if err != nil {
		log.Error().Err(err).Str("channel", i.ChannelID).Msg("failed to list messages for clear")
		replyEphemeral(s, i, "❌ Impossible de lister les messages.")
		return
	}

	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		log.Error().Err(err).Str("channel", i.ChannelID).Msg("failed to bulk delete messages")
		replyEphemeral(s, i, "❌ Suppression impossible (messages trop vieux ?).")
		return
	}
	replyEphemeral(s, i, fmt.Sprintf("🧹 **%d** message(s) supprimé(s).", len(ids)))
}

// HandleTimeout handles /timeout: mutes a member for the given duration.
func (h *ModerationHandler) HandleTimeout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	user := opts["membre"].UserValue(s)
	minutes := int(opts["minutes"].IntValue())
	reason := "Aucune raison"
	if opt, ok := opts["raison"]; ok {
		reason = opt.StringValue()
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	if err := s.GuildMemberTimeout(i.GuildID, user.ID, &until); err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("failed to timeout member")
		replyEphemeral(s, i, "❌ Membre introuvable ou timeout impossible.")
		return
	}
	replyEphemeral(s, i, fmt.Sprintf("⏳ %s timeout **%d min**.\n📝 Raison: %s", mention(user.ID), minutes, reason))
}

// HandleBanword handles the /banword add/remove/list/clear subcommands.
func (h *ModerationHandler) HandleBanword(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]

	switch sub.Name {
	case "add":
		term := optionMap(sub.Options)["terme"].StringValue()
		n, err := h.store.Add(term)
		if err != nil {
			log.Error().Err(err).Msg("failed to add banword")
			replyEphemeral(s, i, "❌ Impossible d'enregistrer le terme.")
			return
		}
		replyEphemeral(s, i, fmt.Sprintf("✅ Ajouté. (%d)", n))

	case "remove":
		term := optionMap(sub.Options)["terme"].StringValue()
		n, removed, err := h.store.Remove(term)
		if err != nil {
			log.Error().Err(err).Msg("failed to remove banword")
			replyEphemeral(s, i, "❌ Impossible de retirer le terme.")
			return
		}
		if !removed {
			replyEphemeral(s, i, "⚠️ Introuvable.")
			return
		}
		replyEphemeral(s, i, fmt.Sprintf("🗑️ Retiré. (%d)", n))

	case "list":
		words := h.store.List()
		if len(words) == 0 {
			replyEphemeral(s, i, "📭 Liste vide.")
			return
		}
		shown := words
		if len(shown) > 40 {
			shown = shown[:40]
		}
		replyEphemeral(s, i, fmt.Sprintf("🚫 Banwords (%d)\n• %s", len(words), strings.Join(shown, "\n• ")))

	case "clear":
		if err := h.store.Clear(); err != nil {
			log.Error().Err(err).Msg("failed to clear banwords")
			replyEphemeral(s, i, "❌ Impossible de vider la liste.")
			return
		}
		replyEphemeral(s, i, "🧹 Liste vidée.")
	}
}

// HandleMessage runs every guild message through the banned-word filter.
// Matching messages are deleted and the author is notified in DM.
func (h *ModerationHandler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.GuildID == "" || m.Author == nil || m.Author.Bot {
		return
	}

	word, ok := h.filter.Match(m.Content)
	if !ok {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		log.Warn().Err(err).Str("message", m.ID).Msg("failed to delete filtered message")
		return
	}
	log.Info().Str("user", m.Author.ID).Str("word", word).Msg("deleted message containing banned word")

	dm, err := s.UserChannelCreate(m.Author.ID)
	if err != nil {
		return
	}
	if _, err := s.ChannelMessageSend(dm.ID, "⚠️ Ton message a été supprimé (mot/terme interdit)."); err != nil {
		log.Debug().Err(err).Str("user", m.Author.ID).Msg("failed to DM filtered user")
	}
}

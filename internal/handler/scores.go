package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/service"
)

// ScoreHandler serves the leaderboard and stats commands.
type ScoreHandler struct {
	arcade *service.ArcadeService
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(arcade *service.ArcadeService) *ScoreHandler {
	return &ScoreHandler{arcade: arcade}
}

// HandleLeaderboard handles /leaderboard: top 10 users by points.
func (h *ScoreHandler) HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	top, err := h.arcade.Leaderboard(context.Background(), 10)
	if err != nil {
		log.Error().Err(err).Msg("failed to load leaderboard")
		replyEphemeral(s, i, "❌ Impossible de charger le classement.")
		return
	}

	var b strings.Builder
	if len(top) == 0 {
		b.WriteString("Personne n'a de points pour l'instant.")
	} else {
		for rank, u := range top {
			fmt.Fprintf(&b, "**%d.** %s — **%d** pts\n", rank+1, mention(u.UserID), u.Points)
		}
	}

	replyEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: b.String(),
		Footer:      &discordgo.MessageEmbedFooter{Text: "Gagne des points avec /quiz /mcquiz /duel /bomb /tictactoe"},
	})
}

// HandleStats handles /stats: a member's points and per-game counters.
func (h *ScoreHandler) HandleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["membre"]; ok {
		user = opt.UserValue(s)
	}

	st, err := h.arcade.Profile(context.Background(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("failed to load user stats")
		replyEphemeral(s, i, "❌ Impossible de charger les stats.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Stats",
		Description: fmt.Sprintf("%s — **%d** pts", mention(user.ID), st.Points),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🎯 Quiz", Value: fmt.Sprintf("%d bonne(s) réponse(s)", st.QuizCorrect), Inline: true},
			{Name: "🧱 MC Quiz", Value: fmt.Sprintf("%d bonne(s) réponse(s)", st.MCQuizCorrect), Inline: true},
			{Name: "⚔️ Duels", Value: fmt.Sprintf("%d V / %d D", st.DuelWins, st.DuelLosses), Inline: true},
			{Name: "💣 Bombes", Value: fmt.Sprintf("%d V / %d D", st.BombWins, st.BombLosses), Inline: true},
			{Name: "❌⭕ Morpion", Value: fmt.Sprintf("%d V / %d D", st.TTTWins, st.TTTLosses), Inline: true},
		},
	}
	respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

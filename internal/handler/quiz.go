package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/game/quiz"
	"discord-arcade-bot/internal/service"
)

// QuizHandler serves /quiz, /mcquiz and the quiz answer buttons.
// Button custom IDs carry everything needed to route the answer:
// quiz:<kind>:<ownerID>:<choice>.
type QuizHandler struct {
	arcade *service.ArcadeService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(arcade *service.ArcadeService) *QuizHandler {
	return &QuizHandler{arcade: arcade}
}

func quizTitle(kind quiz.Kind) string {
	if kind == quiz.KindMinecraft {
		return "🧱 Minecraft Quiz"
	}
	return "🎯 Quiz"
}

// HandleQuiz starts a quiz from the given bank.
func (h *QuizHandler) HandleQuiz(kind quiz.Kind) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		difficulty := quiz.DifficultyRandom
		if opt, ok := optionMap(i.ApplicationCommandData().Options)["difficulte"]; ok {
			difficulty = opt.StringValue()
		}

		user := interactionUser(i)
		sess := h.arcade.StartQuiz(user.ID, kind, difficulty)

		row := discordgo.ActionsRow{}
		for idx, choice := range sess.Choices {
			row.Components = append(row.Components, discordgo.Button{
				Label:    choice,
				Style:    discordgo.SecondaryButton,
				CustomID: fmt.Sprintf("quiz:%s:%s:%d", kind, user.ID, idx),
			})
		}

		embed := &discordgo.MessageEmbed{
			Title:       quizTitle(kind),
			Description: fmt.Sprintf("**%s**\n\n🎚️ Difficulté : **%s** • Récompense : **+%d points**", sess.Question, sess.Difficulty, sess.Reward),
			Footer:      &discordgo.MessageEmbedFooter{Text: "Seul toi peux répondre à ton quiz."},
		}
		replyEmbed(s, i, embed, row)
	}
}

// HandleButton resolves a quiz answer button click.
func (h *QuizHandler) HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 4 {
		return
	}
	kind, ownerID := quiz.Kind(parts[1]), parts[2]
	choice, err := strconv.Atoi(parts[3])
	if err != nil {
		return
	}

	caller := interactionUser(i)
	res, err := h.arcade.AnswerQuiz(context.Background(), ownerID, caller.ID, choice)
	switch {
	case errors.Is(err, game.ErrNotOwner):
		replyEphemeral(s, i, "⛔ C'est pas ton quiz.")
		return
	case errors.Is(err, game.ErrNoSession):
		replyEphemeral(s, i, "⌛ Quiz expiré.")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to resolve quiz answer")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	var verdict string
	if res.Correct {
		verdict = fmt.Sprintf("✅ Bonne réponse ! **+%d points**", res.Reward)
	} else {
		verdict = fmt.Sprintf("❌ Mauvaise réponse.\n✅ Réponse : **%s**", res.CorrectText)
	}

	embed := &discordgo.MessageEmbed{
		Title:       quizTitle(kind),
		Description: fmt.Sprintf("**%s**\n\n%s", res.Question, verdict),
	}
	updateMessage(s, i, embed, disableComponents(i.Message.Components))
}

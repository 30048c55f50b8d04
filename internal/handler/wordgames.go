package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/game/guess"
	"discord-arcade-bot/internal/game/hangman"
	"discord-arcade-bot/internal/service"
)

// WordGamesHandler serves /devine (guess the number) and /pendu (hangman).
type WordGamesHandler struct {
	arcade *service.ArcadeService
}

// NewWordGamesHandler creates a new WordGamesHandler.
func NewWordGamesHandler(arcade *service.ArcadeService) *WordGamesHandler {
	return &WordGamesHandler{arcade: arcade}
}

// spaced inserts spaces between runes so masked words read letter by
// letter.
func spaced(word string) string {
	runes := []rune(word)
	parts := make([]string, len(runes))
	for idx, r := range runes {
		parts[idx] = string(r)
	}
	return strings.Join(parts, " ")
}

// HandleDevine handles /devine start and /devine propose.
func (h *WordGamesHandler) HandleDevine(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	user := interactionUser(i)

	switch sub.Name {
	case "start":
		h.arcade.StartGuess(user.ID)
		embed := &discordgo.MessageEmbed{
			Title:       "🔢 Devine le nombre",
			Description: "J'ai choisi un nombre entre **1** et **100**.\nUtilise `/devine propose nombre:<ton nombre>`.",
			Footer:      &discordgo.MessageEmbedFooter{Text: "Récompense: +3 points si tu trouves"},
		}
		respond(s, i, &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		})

	case "propose":
		n := int(optionMap(sub.Options)["nombre"].IntValue())

		res, err := h.arcade.ProposeGuess(context.Background(), user.ID, n)
		switch {
		case errors.Is(err, game.ErrNoSession):
			replyEphemeral(s, i, "❌ Pas de partie en cours. Fais `/devine start`.")
			return
		case err != nil:
			log.Error().Err(err).Msg("failed to resolve guess")
			replyEphemeral(s, i, "❌ Une erreur est survenue.")
			return
		}

		switch res.Direction {
		case guess.Correct:
			embed := &discordgo.MessageEmbed{
				Title:       "✅ Trouvé !",
				Description: fmt.Sprintf("🎉 Bravo, c'était **%d**.\nEssais: **%d**\n\n+3 points", n, res.Tries),
			}
			replyEmbed(s, i, embed)
		case guess.TooLow:
			replyEphemeral(s, i, fmt.Sprintf("📈 C'est **plus** ! (essai #%d)", res.Tries))
		default:
			replyEphemeral(s, i, fmt.Sprintf("📉 C'est **moins** ! (essai #%d)", res.Tries))
		}
	}
}

// HandlePendu handles /pendu start and /pendu lettre.
func (h *WordGamesHandler) HandlePendu(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	user := interactionUser(i)

	switch sub.Name {
	case "start":
		sess := h.arcade.StartHangman(user.ID)
		embed := &discordgo.MessageEmbed{
			Title: "🧩 Pendu",
			Description: fmt.Sprintf("Mot: **%s**\n\nEssais restants: **%d**\nPropose une lettre avec: `/pendu lettre valeur:a`",
				spaced(sess.Mask()), sess.TriesLeft),
			Footer: &discordgo.MessageEmbedFooter{Text: "Gagné: +4 • Perdu: -2"},
		}
		replyEmbed(s, i, embed)

	case "lettre":
		raw := optionMap(sub.Options)["valeur"].StringValue()

		res, err := h.arcade.GuessHangmanLetter(context.Background(), user.ID, raw)
		switch {
		case errors.Is(err, game.ErrInvalidInput):
			replyEphemeral(s, i, "❌ Donne une lettre (a-z).")
			return
		case errors.Is(err, game.ErrNoSession):
			replyEphemeral(s, i, "❌ Pas de partie en cours. Fais `/pendu start`.")
			return
		case errors.Is(err, game.ErrAlreadyGuessed):
			replyEphemeral(s, i, "⚠️ Tu as déjà proposé cette lettre.")
			return
		case err != nil:
			log.Error().Err(err).Msg("failed to resolve hangman letter")
			replyEphemeral(s, i, "❌ Une erreur est survenue.")
			return
		}

		switch res.Outcome {
		case hangman.Solved:
			replyEmbed(s, i, &discordgo.MessageEmbed{
				Title:       "🧩 Pendu • Fin",
				Description: fmt.Sprintf("🎉 **Gagné !** Le mot était **%s**\n+4 points", res.Word),
			})
		case hangman.Lost:
			replyEmbed(s, i, &discordgo.MessageEmbed{
				Title:       "🧩 Pendu • Fin",
				Description: fmt.Sprintf("💀 **Perdu…** Le mot était **%s**\n-2 points", res.Word),
			})
		default:
			verdict := "❌ Mauvaise lettre…"
			if res.Hit {
				verdict = "✅ Bonne lettre !"
			}
			guessed := ""
			if sess, ok := h.arcade.HangmanSession(user.ID); ok {
				guessed = strings.Join(sess.GuessedList(), ", ")
			}
			embed := &discordgo.MessageEmbed{
				Title: "🧩 Pendu",
				Description: fmt.Sprintf("%s\n\nMot: **%s**\nEssais restants: **%d**\nDéjà proposés: %s",
					verdict, spaced(res.Mask), res.TriesLeft, guessed),
			}
			replyEmbed(s, i, embed)
		}
	}
}

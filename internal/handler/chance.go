package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/game/chance"
	"discord-arcade-bot/internal/service"
)

// ChanceHandler serves the luck-based games: /duel, /bomb, /rps,
// /coinflip and /dice, plus the duel-accept and rps-choice buttons.
// Button custom IDs: duel:<challengerID>:<targetID>, rps:<ownerID>:<choice>.
type ChanceHandler struct {
	arcade *service.ArcadeService
}

// NewChanceHandler creates a new ChanceHandler.
func NewChanceHandler(arcade *service.ArcadeService) *ChanceHandler {
	return &ChanceHandler{arcade: arcade}
}

// HandleDuel posts a challenge with an accept button for the target.
func (h *ChanceHandler) HandleDuel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionMap(i.ApplicationCommandData().Options)["membre"].UserValue(s)
	challenger := interactionUser(i)

	_, err := h.arcade.ChallengeDuel(
		chance.Participant{ID: challenger.ID, Bot: challenger.Bot},
		chance.Participant{ID: target.ID, Bot: target.Bot},
	)
	switch {
	case errors.Is(err, game.ErrBotPlayer):
		replyEphemeral(s, i, "🤖 Tu peux pas duel un bot.")
		return
	case errors.Is(err, game.ErrSamePlayer):
		replyEphemeral(s, i, "😅 Tu peux pas te duel toi-même.")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to open duel")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚔️ Duel",
		Description: fmt.Sprintf("🔥 %s défie %s !\n\n👉 %s clique pour accepter.",
			mention(challenger.ID), mention(target.ID), mention(target.ID)),
		Footer: &discordgo.MessageEmbedFooter{Text: "Gagnant: +5 points"},
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "✅ Accepter le duel",
			Style:    discordgo.SuccessButton,
			CustomID: fmt.Sprintf("duel:%s:%s", challenger.ID, target.ID),
		},
	}}
	replyEmbed(s, i, embed, row)
}

// HandleDuelButton resolves a duel when the target accepts.
func (h *ChanceHandler) HandleDuelButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 3 {
		return
	}
	challengerID, targetID := parts[1], parts[2]

	caller := interactionUser(i)
	res, err := h.arcade.AcceptDuel(context.Background(), challengerID, targetID, caller.ID)
	switch {
	case errors.Is(err, game.ErrNotOwner):
		replyEphemeral(s, i, "⛔ Seule la cible peut accepter.")
		return
	case errors.Is(err, game.ErrNoSession):
		replyEphemeral(s, i, "⌛ Duel expiré.")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to resolve duel")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚔️ Duel",
		Description: fmt.Sprintf("🎉 Gagnant : %s (**+5 points**)\n💀 Perdant : %s",
			mention(res.Winner), mention(res.Loser)),
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Duel terminé",
			Style:    discordgo.SecondaryButton,
			CustomID: "duel:disabled",
			Disabled: true,
		},
	}}
	updateMessage(s, i, embed, []discordgo.MessageComponent{row})
}

// HandleBomb resolves /bomb immediately: 50/50 the bomb hits or backfires.
func (h *ChanceHandler) HandleBomb(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionMap(i.ApplicationCommandData().Options)["membre"].UserValue(s)
	attacker := interactionUser(i)

	res, err := h.arcade.Bomb(context.Background(),
		chance.Participant{ID: attacker.ID, Bot: attacker.Bot},
		chance.Participant{ID: target.ID, Bot: target.Bot},
	)
	switch {
	case errors.Is(err, game.ErrBotPlayer):
		replyEphemeral(s, i, "🤖 Pas de bomb sur les bots.")
		return
	case errors.Is(err, game.ErrSamePlayer):
		replyEphemeral(s, i, "💣 Tu peux pas te bomb toi-même.")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to resolve bomb")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	var desc string
	if res.Win {
		desc = fmt.Sprintf("💥 **BOOM !** %s explose.\n🎉 %s gagne **+4 points**",
			mention(res.TargetID), mention(res.AttackerID))
	} else {
		desc = fmt.Sprintf("🧨 Oups… la bombe se retourne !\n😵 %s perd **-2 points**",
			mention(res.AttackerID))
	}
	replyEmbed(s, i, &discordgo.MessageEmbed{Title: "💣 Bomb", Description: desc})
}

// HandleRPS posts the three choice buttons for the caller.
func (h *ChanceHandler) HandleRPS(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "🪨 Pierre", Style: discordgo.SecondaryButton, CustomID: fmt.Sprintf("rps:%s:%s", user.ID, chance.Rock)},
		discordgo.Button{Label: "📄 Feuille", Style: discordgo.SecondaryButton, CustomID: fmt.Sprintf("rps:%s:%s", user.ID, chance.Paper)},
		discordgo.Button{Label: "✂️ Ciseaux", Style: discordgo.SecondaryButton, CustomID: fmt.Sprintf("rps:%s:%s", user.ID, chance.Scissors)},
	}}
	embed := &discordgo.MessageEmbed{
		Title:       "🪨📄✂️ Pierre-Feuille-Ciseaux",
		Description: "Choisis ton coup 👇",
		Footer:      &discordgo.MessageEmbedFooter{Text: "Gagné: +2 • Perdu: -1 • Égalité: 0"},
	}
	replyEmbed(s, i, embed, row)
}

// HandleRPSButton plays the chosen move against the bot.
func (h *ChanceHandler) HandleRPSButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 3 {
		return
	}
	ownerID := parts[1]

	caller := interactionUser(i)
	if caller.ID != ownerID {
		replyEphemeral(s, i, "⛔ C'est pas ton RPS.")
		return
	}

	choice, err := chance.ParseChoice(parts[2])
	if err != nil {
		return
	}

	res, st, err := h.arcade.RPS(context.Background(), ownerID, choice)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve rps round")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	var verdict string
	switch res.Outcome {
	case chance.RPSWin:
		verdict = "🎉 **Gagné !** (+2 points)"
	case chance.RPSLose:
		verdict = "😵 **Perdu…** (-1 point)"
	default:
		verdict = "🤝 **Égalité.** (+0)"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🪨📄✂️ Pierre-Feuille-Ciseaux",
		Description: fmt.Sprintf("Tu as choisi **%s**.\nLe bot a choisi **%s**.\n\n%s",
			res.Player, res.Bot, verdict),
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Points: %d", st.Points)},
	}
	updateMessage(s, i, embed, nil)
}

// HandleCoinflip resolves /coinflip.
func (h *ChanceHandler) HandleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raw := optionMap(i.ApplicationCommandData().Options)["choix"].StringValue()
	side, err := chance.ParseSide(raw)
	if err != nil {
		replyEphemeral(s, i, "❌ Choix invalide.")
		return
	}

	user := interactionUser(i)
	res, st, err := h.arcade.Coinflip(context.Background(), user.ID, side)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve coinflip")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	verdict := "😵 **Perdu…** (-1 point)"
	if res.Win {
		verdict = "🎉 **Gagné !** (+1 point)"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "🪙 Pile ou Face",
		Description: fmt.Sprintf("Tu as choisi **%s**.\nRésultat: **%s**.\n\n%s", res.Choice, res.Result, verdict),
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Points: %d", st.Points)},
	}
	replyEmbed(s, i, embed)
}

// HandleDice resolves /dice.
func (h *ChanceHandler) HandleDice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	bet := int(optionMap(i.ApplicationCommandData().Options)["nombre"].IntValue())

	user := interactionUser(i)
	res, st, err := h.arcade.Dice(context.Background(), user.ID, bet)
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		replyEphemeral(s, i, "❌ Pari invalide (1-6).")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to resolve dice roll")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	verdict := "😵 **Raté…** (-1 point)"
	if res.Win {
		verdict = "🎉 **Pile poil !** (+2 points)"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "🎲 Dé",
		Description: fmt.Sprintf("Ton pari: **%d**\nLe dé: **%d**\n\n%s", res.Bet, res.Roll, verdict),
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Points: %d", st.Points)},
	}
	replyEmbed(s, i, embed)
}

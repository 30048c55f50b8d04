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
	"discord-arcade-bot/internal/game/tictactoe"
	"discord-arcade-bot/internal/service"
)

// TicTacToeHandler serves /tictactoe and the board buttons. Button custom
// IDs are ttt:<gameID>:<pos>.
type TicTacToeHandler struct {
	arcade *service.ArcadeService
}

// NewTicTacToeHandler creates a new TicTacToeHandler.
func NewTicTacToeHandler(arcade *service.ArcadeService) *TicTacToeHandler {
	return &TicTacToeHandler{arcade: arcade}
}

// renderBoard formats the board as three emoji lines for the embed.
func renderBoard(board [9]string) string {
	cells := make([]string, 9)
	for idx, c := range board {
		switch c {
		case tictactoe.SymbolX:
			cells[idx] = "❌"
		case tictactoe.SymbolO:
			cells[idx] = "⭕"
		default:
			cells[idx] = "⬜"
		}
	}
	return strings.Join(cells[0:3], "") + "\n" + strings.Join(cells[3:6], "") + "\n" + strings.Join(cells[6:9], "")
}

// boardComponents builds the 3x3 button grid. Occupied cells and finished
// games are disabled.
func boardComponents(gameID string, board [9]string, locked bool) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, 3)
	for r := 0; r < 3; r++ {
		row := discordgo.ActionsRow{}
		for c := 0; c < 3; c++ {
			idx := r*3 + c
			cell := board[idx]
			label := cell
			style := discordgo.SecondaryButton
			if cell == "" {
				label = " "
				style = discordgo.PrimaryButton
			}
			row.Components = append(row.Components, discordgo.Button{
				Label:    label,
				Style:    style,
				CustomID: fmt.Sprintf("ttt:%s:%d", gameID, idx),
				Disabled: locked || cell != "",
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// HandleTicTacToe starts a game against the chosen member.
func (h *TicTacToeHandler) HandleTicTacToe(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionMap(i.ApplicationCommandData().Options)["membre"].UserValue(s)
	challenger := interactionUser(i)

	gameID, sess, err := h.arcade.StartTicTacToe(
		tictactoe.Participant{ID: challenger.ID, Bot: challenger.Bot},
		tictactoe.Participant{ID: target.ID, Bot: target.Bot},
	)
	switch {
	case errors.Is(err, game.ErrBotPlayer):
		replyEphemeral(s, i, "🤖 Tu peux pas jouer contre un bot (pour l'instant).")
		return
	case errors.Is(err, game.ErrSamePlayer):
		replyEphemeral(s, i, "😅 Tu peux pas jouer contre toi-même.")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to start tic-tac-toe")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "❌⭕ TicTacToe",
		Description: fmt.Sprintf(
			"Partie: %s (X) vs %s (O)\nTour de: %s (X)\n\n%s",
			mention(sess.PlayerX), mention(sess.PlayerO), mention(sess.PlayerX), renderBoard(sess.Board),
		),
		Footer: &discordgo.MessageEmbedFooter{Text: "Gagnant: +5 points"},
	}
	respond(s, i, &discordgo.InteractionResponseData{
		Content:    fmt.Sprintf("🎮 %s viens jouer !", mention(target.ID)),
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: boardComponents(gameID, sess.Board, false),
	})
}

// HandleButton applies one board click.
func (h *TicTacToeHandler) HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 3 {
		return
	}
	gameID := parts[1]
	pos, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}

	caller := interactionUser(i)
	res, err := h.arcade.MoveTicTacToe(context.Background(), gameID, caller.ID, pos)
	switch {
	case errors.Is(err, game.ErrNoSession):
		replyEphemeral(s, i, "⌛ Partie expirée.")
		return
	case errors.Is(err, game.ErrNotParticipant):
		replyEphemeral(s, i, "⛔ Tu n'es pas dans cette partie.")
		return
	case errors.Is(err, game.ErrNotYourTurn):
		replyEphemeral(s, i, "⏳ Pas ton tour.")
		return
	case errors.Is(err, game.ErrCellTaken):
		replyEphemeral(s, i, "⚠️ Case déjà prise.")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to apply tic-tac-toe move")
		replyEphemeral(s, i, "❌ Une erreur est survenue.")
		return
	}

	sess := res.Session
	var desc string
	locked := false
	switch res.Outcome {
	case tictactoe.Won:
		desc = fmt.Sprintf("🎉 %s gagne (**+5 points**)", mention(res.Winner))
		locked = true
	case tictactoe.Draw:
		desc = "🤝 Match nul !"
		locked = true
	default:
		symbol := tictactoe.SymbolO
		if sess.Turn == sess.PlayerX {
			symbol = tictactoe.SymbolX
		}
		desc = fmt.Sprintf("Tour de : %s (%s)", mention(sess.Turn), symbol)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "❌⭕ TicTacToe",
		Description: desc + "\n\n" + renderBoard(sess.Board),
	}
	updateMessage(s, i, embed, boardComponents(gameID, sess.Board, locked))
}

// Package bot provides the Discord session initialization, command
// registration and event routing.
package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/config"
	"discord-arcade-bot/internal/emoji"
	"discord-arcade-bot/internal/game/quiz"
	"discord-arcade-bot/internal/handler"
	"discord-arcade-bot/internal/moderation"
	"discord-arcade-bot/internal/service"
)

// Bot wraps the Discord session with application dependencies.
type Bot struct {
	session *discordgo.Session
	cfg     *config.Config

	// Handlers
	infoHandler       *handler.InfoHandler
	scoreHandler      *handler.ScoreHandler
	quizHandler       *handler.QuizHandler
	tttHandler        *handler.TicTacToeHandler
	chanceHandler     *handler.ChanceHandler
	wordGamesHandler  *handler.WordGamesHandler
	moderationHandler *handler.ModerationHandler
	emojiHandler      *handler.EmojiHandler

	commandRoutes   map[string]func(*discordgo.Session, *discordgo.InteractionCreate)
	componentRoutes map[string]func(*discordgo.Session, *discordgo.InteractionCreate)
}

// Dependencies holds everything the bot handlers need.
type Dependencies struct {
	Config        *config.Config
	Arcade        *service.ArcadeService
	BanwordStore  *moderation.Store
	BanwordFilter *moderation.Filter
	EmojiImporter *emoji.Importer
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	session, err := discordgo.New("Bot " + deps.Config.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildEmojis |
		discordgo.IntentMessageContent

	b := &Bot{
		session:           session,
		cfg:               deps.Config,
		infoHandler:       handler.NewInfoHandler(deps.Config),
		scoreHandler:      handler.NewScoreHandler(deps.Arcade),
		quizHandler:       handler.NewQuizHandler(deps.Arcade),
		tttHandler:        handler.NewTicTacToeHandler(deps.Arcade),
		chanceHandler:     handler.NewChanceHandler(deps.Arcade),
		wordGamesHandler:  handler.NewWordGamesHandler(deps.Arcade),
		moderationHandler: handler.NewModerationHandler(deps.BanwordStore, deps.BanwordFilter),
		emojiHandler:      handler.NewEmojiHandler(deps.EmojiImporter),
	}
	b.buildRoutes()

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteractionCreate)
	session.AddHandler(b.moderationHandler.HandleMessage)

	return b, nil
}

// buildRoutes maps command names and component custom-ID prefixes to
// their handlers.
func (b *Bot) buildRoutes() {
	b.commandRoutes = map[string]func(*discordgo.Session, *discordgo.InteractionCreate){
		"ping":        b.infoHandler.HandlePing,
		"help":        b.infoHandler.HandleHelp,
		"site":        b.infoHandler.HandleSite,
		"version":     b.infoHandler.HandleVersion,
		"modpack":     b.infoHandler.HandleModpack,
		"ip":          b.infoHandler.HandleIP,
		"userinfo":    b.infoHandler.HandleUserInfo,
		"suggest":     b.infoHandler.HandleSuggest,
		"leaderboard": b.scoreHandler.HandleLeaderboard,
		"stats":       b.scoreHandler.HandleStats,
		"quiz":        b.quizHandler.HandleQuiz(quiz.KindGeneral),
		"mcquiz":      b.quizHandler.HandleQuiz(quiz.KindMinecraft),
		"tictactoe":   b.tttHandler.HandleTicTacToe,
		"duel":        b.chanceHandler.HandleDuel,
		"bomb":        b.chanceHandler.HandleBomb,
		"rps":         b.chanceHandler.HandleRPS,
		"coinflip":    b.chanceHandler.HandleCoinflip,
		"dice":        b.chanceHandler.HandleDice,
		"devine":      b.wordGamesHandler.HandleDevine,
		"pendu":       b.wordGamesHandler.HandlePendu,
		"clear":       b.moderationHandler.HandleClear,
		"timeout":     b.moderationHandler.HandleTimeout,
		"banword":     b.moderationHandler.HandleBanword,
		"emojizip":    b.emojiHandler.HandleEmojiZip,
		"emojiremove": b.emojiHandler.HandleEmojiRemove,
		"emojidedupe": b.emojiHandler.HandleEmojiDedupe,
	}
	b.componentRoutes = map[string]func(*discordgo.Session, *discordgo.InteractionCreate){
		"quiz": b.quizHandler.HandleButton,
		"ttt":  b.tttHandler.HandleButton,
		"duel": b.chanceHandler.HandleDuelButton,
		"rps":  b.chanceHandler.HandleRPSButton,
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Msg("connected to discord")
}

// onInteractionCreate routes slash commands by name and buttons by
// custom-ID prefix.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commandRoutes[name]; ok {
			log.Debug().Str("command", name).Msg("dispatching slash command")
			h(s, i)
			return
		}
		log.Warn().Str("command", name).Msg("unknown slash command")

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		prefix, _, _ := strings.Cut(customID, ":")
		if h, ok := b.componentRoutes[prefix]; ok {
			log.Debug().Str("custom_id", customID).Msg("dispatching component interaction")
			h(s, i)
			return
		}
		log.Warn().Str("custom_id", customID).Msg("unknown component interaction")
	}
}

// Start opens the gateway connection and registers the slash commands in
// one bulk overwrite.
func (b *Bot) Start() error {
	log.Info().Msg("Starting bot...")

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	_, err := b.session.ApplicationCommandBulkOverwrite(b.cfg.Bot.AppID, b.cfg.Bot.GuildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	log.Info().Int("count", len(commands)).Str("guild", b.cfg.Bot.GuildID).Msg("slash commands registered")

	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	if err := b.session.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close discord session")
	}
}

// Session returns the underlying discordgo session.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

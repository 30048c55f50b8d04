package handler

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/config"
)

// InfoHandler serves the static server-info and community commands.
type InfoHandler struct {
	cfg *config.Config
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{cfg: cfg}
}

// HandlePing handles /ping.
func (h *InfoHandler) HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	replyEphemeral(s, i, "📍 pong")
}

// HandleSite handles /site.
func (h *InfoHandler) HandleSite(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply(s, i, fmt.Sprintf("🌐 %s", h.cfg.Server.SiteURL))
}

// HandleVersion handles /version.
func (h *InfoHandler) HandleVersion(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply(s, i, fmt.Sprintf("⛏️ Version : **%s**", h.cfg.Server.Version))
}

// HandleModpack handles /modpack.
func (h *InfoHandler) HandleModpack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply(s, i, fmt.Sprintf("📦 Modpack : %s", h.cfg.Server.ModpackURL))
}

// HandleIP handles /ip.
func (h *InfoHandler) HandleIP(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply(s, i, fmt.Sprintf("🧭 IP du serveur : **%s**", h.cfg.Server.IP))
}

// HandleHelp handles /help.
func (h *InfoHandler) HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "📌 PlairePoilue • Menu du bot",
		Description: "Voici les commandes dispo 👇",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🧱 Minecraft",
				Value: "🌐 **/site** — lien du site\n" +
					"⛏️ **/version** — version du serveur\n" +
					"📦 **/modpack** — lien du modpack\n" +
					"🧭 **/ip** — IP du serveur",
			},
			{
				Name: "👥 Communauté",
				Value: "🪪 **/userinfo** — infos d'un membre\n" +
					"💡 **/suggest** — proposer une idée",
			},
			{
				Name: "🛡️ Modération",
				Value: "🧹 **/clear** — supprimer des messages *(modo)*\n" +
					"⏳ **/timeout** — timeout un membre *(modo)*\n" +
					"🚫 **/banword** — mots interdits *(modo)*",
			},
			{
				Name: "🎮 Mini-jeux",
				Value: "🎯 **/quiz** • 🧱 **/mcquiz** — quiz à points\n" +
					"⚔️ **/duel** — défie quelqu'un\n" +
					"💣 **/bomb** — roulette explosive\n" +
					"❌⭕ **/tictactoe** — morpion\n" +
					"🪨📄✂️ **/rps** • 🪙 **/coinflip** • 🎲 **/dice**\n" +
					"🔢 **/devine** • 🧩 **/pendu**\n" +
					"🏆 **/leaderboard** • 📊 **/stats**",
			},
		},
	}
	respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// HandleUserInfo handles /userinfo.
func (h *InfoHandler) HandleUserInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	opts := optionMap(i.ApplicationCommandData().Options)
	if opt, ok := opts["membre"]; ok {
		user = opt.UserValue(s)
	}

	created, _ := discordgo.SnowflakeTimestamp(user.ID)
	embed := &discordgo.MessageEmbed{
		Title:     "🪪 User Info",
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 Utilisateur", Value: fmt.Sprintf("%s (%s)", mention(user.ID), user.Username)},
			{Name: "🆔 ID", Value: user.ID, Inline: true},
			{Name: "📅 Créé le", Value: fmt.Sprintf("<t:%d:F>", created.Unix())},
		},
	}
	respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// HandleSuggest handles /suggest: the idea is posted to the suggestion
// channel (or the current one) with vote reactions.
func (h *InfoHandler) HandleSuggest(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	idea := opts["idee"].StringValue()

	channelID := i.ChannelID
	if h.cfg.Bot.SuggestChannel != "" {
		channelID = h.cfg.Bot.SuggestChannel
	}

	user := interactionUser(i)
	embed := &discordgo.MessageEmbed{
		Title:       "💡 Nouvelle suggestion",
		Description: idea,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auteur", Value: mention(user.ID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Vote avec 👍 / 👎"},
	}

	msg, err := s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		log.Error().Err(err).Str("channel", channelID).Msg("failed to post suggestion")
		replyEphemeral(s, i, "❌ Impossible d'envoyer la suggestion.")
		return
	}
	for _, emoji := range []string{"👍", "👎"} {
		if err := s.MessageReactionAdd(channelID, msg.ID, emoji); err != nil {
			log.Warn().Err(err).Msg("failed to add vote reaction")
		}
	}
	replyEphemeral(s, i, fmt.Sprintf("✅ Suggestion envoyée dans <#%s>.", channelID))
}

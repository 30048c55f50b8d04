package handler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/emoji"
)

// EmojiHandler serves /emojizip, /emojiremove and /emojidedupe.
type EmojiHandler struct {
	importer *emoji.Importer
}

// NewEmojiHandler creates a new EmojiHandler.
func NewEmojiHandler(importer *emoji.Importer) *EmojiHandler {
	return &EmojiHandler{importer: importer}
}

// guildUploader adapts a Discord session to the importer's Uploader.
type guildUploader struct {
	s       *discordgo.Session
	guildID string
}

func (g *guildUploader) ExistingNames(ctx context.Context) (map[string]bool, error) {
	emojis, err := g.s.GuildEmojis(g.guildID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(emojis))
	for _, e := range emojis {
		names[e.Name] = true
	}
	return names, nil
}

func (g *guildUploader) Create(ctx context.Context, name, dataURI string) error {
	_, err := g.s.GuildEmojiCreate(g.guildID, &discordgo.EmojiParams{Name: name, Image: dataURI})
	return err
}

// deferEphemeral acknowledges the interaction so slow emoji work can
// report through edits.
func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to defer interaction")
		return false
	}
	return true
}

// HandleEmojiZip handles /emojizip: downloads the attached archive and
// imports its images as guild emojis.
func (h *EmojiHandler) HandleEmojiZip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	attachmentID, ok := data.Options[0].Value.(string)
	if !ok {
		replyEphemeral(s, i, "❌ Pièce jointe manquante.")
		return
	}
	attachment := data.Resolved.Attachments[attachmentID]
	if attachment == nil {
		replyEphemeral(s, i, "❌ Pièce jointe manquante.")
		return
	}
	if !strings.HasSuffix(strings.ToLower(attachment.Filename), ".zip") {
		replyEphemeral(s, i, "❌ Fichier **.zip** uniquement.")
		return
	}

	if !deferEphemeral(s, i) {
		return
	}

	report, err := h.importer.Run(context.Background(), attachment.URL, &guildUploader{s: s, guildID: i.GuildID})
	switch {
	case errors.Is(err, emoji.ErrTooLarge):
		editReply(s, i, "❌ Impossible de télécharger le ZIP (trop gros ou erreur).")
		return
	case errors.Is(err, emoji.ErrNotZip):
		editReply(s, i, "❌ ZIP invalide/corrompu.")
		return
	case err != nil:
		log.Error().Err(err).Msg("emoji import failed")
		editReply(s, i, "❌ Import impossible.")
		return
	}
	if report.Total == 0 {
		editReply(s, i, "📭 Aucun fichier image trouvé dans le ZIP (png/jpg/gif).")
		return
	}

	msg := fmt.Sprintf("✅ Import terminé :\n• Ajoutés: **%d**\n• Déjà existants: **%d**\n• Erreurs/refus: **%d**",
		report.Added, report.Skipped, report.Failed)
	if report.Truncated() {
		msg += fmt.Sprintf("\n⚠️ Traitement max %d / %d.", emoji.MaxPerRun, report.Total)
	}
	msg += "\n\n💡 Emojis < **256KB**."
	editReply(s, i, msg)
}

// HandleEmojiRemove handles /emojiremove: deletes the N most recent
// guild emojis.
func (h *EmojiHandler) HandleEmojiRemove(s *discordgo.Session, i *discordgo.InteractionCreate) {
	count := int(optionMap(i.ApplicationCommandData().Options)["nombre"].IntValue())

	if !deferEphemeral(s, i) {
		return
	}

	emojis, err := s.GuildEmojis(i.GuildID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guild emojis")
		editReply(s, i, "❌ Impossible de lister les emojis.")
		return
	}
	// Most recent first; emoji IDs are snowflakes.
	sort.Slice(emojis, func(a, b int) bool { return emojis[a].ID > emojis[b].ID })
	if count > len(emojis) {
		count = len(emojis)
	}

	deleted, failed := 0, 0
	for _, e := range emojis[:count] {
		if err := s.GuildEmojiDelete(i.GuildID, e.ID); err != nil {
			log.Warn().Err(err).Str("emoji", e.Name).Msg("failed to delete emoji")
			failed++
			continue
		}
		deleted++
	}
	editReply(s, i, fmt.Sprintf("🗑️ Supprimés: **%d** • Échecs: **%d**", deleted, failed))
}

// HandleEmojiDedupe handles /emojidedupe: scans for identical emojis and
// deletes the newer copies unless dryrun (the default) is on.
func (h *EmojiHandler) HandleEmojiDedupe(s *discordgo.Session, i *discordgo.InteractionCreate) {
	dryrun := true
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["dryrun"]; ok {
		dryrun = opt.BoolValue()
	}

	if !deferEphemeral(s, i) {
		return
	}

	emojis, err := s.GuildEmojis(i.GuildID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guild emojis")
		editReply(s, i, "❌ Impossible de lister les emojis.")
		return
	}

	refs := make([]emoji.Ref, 0, len(emojis))
	for _, e := range emojis {
		created, _ := discordgo.SnowflakeTimestamp(e.ID)
		refs = append(refs, emoji.Ref{
			ID:        e.ID,
			Name:      e.Name,
			URL:       discordgo.EndpointEmoji(e.ID),
			CreatedAt: created,
		})
	}

	plan := h.importer.PlanDedupe(context.Background(), refs)
	if len(plan.Duplicates) == 0 {
		editReply(s, i, fmt.Sprintf("✅ Aucun doublon détecté.\nScannés: **%d** • Échecs fetch: **%d**",
			plan.Scanned, plan.FailedFetch))
		return
	}

	preview := make([]string, 0, 20)
	for idx, d := range plan.Duplicates {
		if idx == 20 {
			break
		}
		preview = append(preview, fmt.Sprintf("• :%s: (`%s`)", d.Name, d.ID))
	}
	more := ""
	if len(plan.Duplicates) > 20 {
		more = fmt.Sprintf("\n… +%d autre(s)", len(plan.Duplicates)-20)
	}

	if dryrun {
		editReply(s, i, fmt.Sprintf(
			"🧼 **DRYRUN** — je supprimerais **%d** emoji(s) doublon (garde le plus ancien).\n"+
				"Scannés: **%d** • Échecs fetch: **%d**\n\n%s%s\n\n"+
				"➡️ Relance avec `/emojidedupe dryrun:false` pour supprimer.",
			len(plan.Duplicates), plan.Scanned, plan.FailedFetch, strings.Join(preview, "\n"), more))
		return
	}

	deleted, failed := 0, 0
	for _, d := range plan.Duplicates {
		if err := s.GuildEmojiDelete(i.GuildID, d.ID); err != nil {
			log.Warn().Err(err).Str("emoji", d.Name).Msg("failed to delete duplicate emoji")
			failed++
			continue
		}
		deleted++
	}
	editReply(s, i, fmt.Sprintf("🧼 Dédoublonnage terminé.\nSupprimés: **%d** • Échecs: **%d**", deleted, failed))
}

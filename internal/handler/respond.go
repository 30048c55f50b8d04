// Package handler provides Discord slash command and component handlers.
package handler

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// reply sends a plain channel message response to an interaction.
func reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respond(s, i, &discordgo.InteractionResponseData{Content: content})
}

// replyEphemeral sends a response only the caller can see.
func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respond(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// replyEmbed sends an embed response, optionally with component rows.
func replyEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	respond(s, i, &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to respond to interaction")
	}
}

// updateMessage edits the message a component interaction came from.
func updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update interaction message")
	}
}

// editReply edits the deferred or initial response.
func editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	if err != nil {
		log.Error().Err(err).Msg("failed to edit interaction response")
	}
}

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes the options of a command or subcommand by name.
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// mention formats a user ID as a mention.
func mention(userID string) string {
	return "<@" + userID + ">"
}

// disableComponents returns a copy of rows with every button disabled.
func disableComponents(rows []discordgo.MessageComponent) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			out = append(out, row)
			continue
		}
		newRow := discordgo.ActionsRow{}
		for _, c := range ar.Components {
			if btn, ok := c.(*discordgo.Button); ok {
				b := *btn
				b.Disabled = true
				newRow.Components = append(newRow.Components, b)
				continue
			}
			newRow.Components = append(newRow.Components, c)
		}
		out = append(out, newRow)
	}
	return out
}

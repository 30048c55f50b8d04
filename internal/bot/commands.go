package bot

import "github.com/bwmarrin/discordgo"

// difficultyChoices is shared by /quiz and /mcquiz.
var difficultyChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "🟢 Facile", Value: "easy"},
	{Name: "🟠 Moyen", Value: "medium"},
	{Name: "🔴 Difficile", Value: "hard"},
	{Name: "🎲 Aléatoire", Value: "random"},
}

func intPtr(v float64) *float64 { return &v }

// commands is the full slash-command surface, registered in one bulk
// overwrite at startup.
var commands = []*discordgo.ApplicationCommand{
	{Name: "ping", Description: "📍 Tester le bot"},
	{Name: "help", Description: "📌 Menu du bot"},
	{Name: "site", Description: "🌐 Lien du site"},
	{Name: "version", Description: "⛏️ Version du serveur"},
	{Name: "modpack", Description: "📦 Lien du modpack"},
	{Name: "ip", Description: "🧭 IP du serveur Minecraft"},
	{
		Name:        "userinfo",
		Description: "🪪 Infos d'un membre",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "membre", Description: "Le membre (optionnel)"},
		},
	},
	{
		Name:        "suggest",
		Description: "💡 Proposer une idée",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "idee", Description: "Ta suggestion", Required: true},
		},
	},
	{
		Name:        "clear",
		Description: "🧹 Supprimer des messages",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionInteger, Name: "nombre", Description: "1 à 100",
				Required: true, MinValue: intPtr(1), MaxValue: 100,
			},
		},
	},
	{
		Name:        "timeout",
		Description: "⏳ Timeout un membre",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "membre", Description: "Le membre à timeout", Required: true},
			{
				Type: discordgo.ApplicationCommandOptionInteger, Name: "minutes", Description: "Durée en minutes (1-10080)",
				Required: true, MinValue: intPtr(1), MaxValue: 10080,
			},
			{Type: discordgo.ApplicationCommandOptionString, Name: "raison", Description: "Raison (optionnel)"},
		},
	},
	{
		Name:        "banword",
		Description: "🚫 Gestion des mots interdits",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add", Description: "Ajouter un terme",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "terme", Description: "Terme à interdire", Required: true},
				},
			},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "remove", Description: "Retirer un terme",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "terme", Description: "Terme à retirer", Required: true},
				},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "Lister les termes"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "clear", Description: "Vider la liste"},
		},
	},
	{
		Name:        "emojizip",
		Description: "😀 Importer des emojis depuis un ZIP",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionAttachment, Name: "zip", Description: "Fichier .zip (png/jpg/gif)", Required: true},
		},
	},
	{
		Name:        "emojiremove",
		Description: "🗑️ Supprimer les emojis récents",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionInteger, Name: "nombre", Description: "Combien d'emojis supprimer (1-250)",
				Required: true, MinValue: intPtr(1), MaxValue: 250,
			},
		},
	},
	{
		Name:        "emojidedupe",
		Description: "🧼 Détecter les emojis en double",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionBoolean, Name: "dryrun", Description: "Prévisualiser sans supprimer (défaut: oui)"},
		},
	},
	{
		Name:        "quiz",
		Description: "🎯 Quiz (général)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionString, Name: "difficulte",
				Description: "Choisis une difficulté (sinon aléatoire)", Choices: difficultyChoices,
			},
		},
	},
	{
		Name:        "mcquiz",
		Description: "🧱 Quiz Minecraft",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionString, Name: "difficulte",
				Description: "Choisis une difficulté (sinon aléatoire)", Choices: difficultyChoices,
			},
		},
	},
	{Name: "leaderboard", Description: "🏆 Classement des points"},
	{
		Name:        "stats",
		Description: "📊 Stats d'un membre",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "membre", Description: "Le membre (optionnel)"},
		},
	},
	{
		Name:        "duel",
		Description: "⚔️ Duel (défie quelqu'un)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "membre", Description: "La personne à défier", Required: true},
		},
	},
	{
		Name:        "bomb",
		Description: "💣 Roulette explosive",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "membre", Description: "La cible", Required: true},
		},
	},
	{
		Name:        "tictactoe",
		Description: "❌⭕ TicTacToe contre un membre",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "membre", Description: "Adversaire", Required: true},
		},
	},
	{Name: "rps", Description: "🪨📄✂️ Pierre-Feuille-Ciseaux (contre le bot)"},
	{
		Name:        "coinflip",
		Description: "🪙 Pile ou Face (parie un choix)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionString, Name: "choix", Description: "Ton choix", Required: true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Pile", Value: "pile"},
					{Name: "Face", Value: "face"},
				},
			},
		},
	},
	{
		Name:        "dice",
		Description: "🎲 Dé (1-6) (parie un chiffre)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionInteger, Name: "nombre", Description: "Ton pari (1-6)",
				Required: true, MinValue: intPtr(1), MaxValue: 6,
			},
		},
	},
	{
		Name:        "devine",
		Description: "🔢 Devine le nombre (1-100)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "start", Description: "Commence une partie"},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "propose", Description: "Propose un nombre",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type: discordgo.ApplicationCommandOptionInteger, Name: "nombre", Description: "1 à 100",
						Required: true, MinValue: intPtr(1), MaxValue: 100,
					},
				},
			},
		},
	},
	{
		Name:        "pendu",
		Description: "🧩 Pendu (mot à deviner)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "start", Description: "Commence une partie"},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "lettre", Description: "Propose une lettre",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "valeur", Description: "Une lettre (a-z)", Required: true},
				},
			},
		},
	},
}

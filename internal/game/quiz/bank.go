package quiz

// Question banks, difficulty-tiered. Questions are in French to match the
// community the bot serves.

var generalBank = []Question{
	{Difficulty: DifficultyEasy, Text: "Quelle est la capitale de l'Espagne ?", Choices: []string{"Madrid", "Barcelone", "Séville", "Valence"}, Answer: 0},
	{Difficulty: DifficultyEasy, Text: "Combien font 7 × 8 ?", Choices: []string{"54", "56", "64", "58"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quel océan borde la côte ouest de la France ?", Choices: []string{"Océan Indien", "Océan Atlantique", "Océan Arctique", "Océan Pacifique"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Qui a peint la Joconde ?", Choices: []string{"Van Gogh", "Picasso", "Léonard de Vinci", "Monet"}, Answer: 2},
	{Difficulty: DifficultyEasy, Text: "Quel est le symbole chimique de l'oxygène ?", Choices: []string{"Ox", "O", "Og", "Oy"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quelle planète est surnommée la 'planète rouge' ?", Choices: []string{"Vénus", "Mars", "Jupiter", "Mercure"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quelle langue parle-t-on principalement au Brésil ?", Choices: []string{"Espagnol", "Portugais", "Français", "Italien"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quel est le plus grand mammifère actuel ?", Choices: []string{"Éléphant d'Afrique", "Orque", "Baleine bleue", "Rhinocéros blanc"}, Answer: 2},
	{Difficulty: DifficultyEasy, Text: "Quel est le plus grand océan du monde ?", Choices: []string{"Atlantique", "Indien", "Arctique", "Pacifique"}, Answer: 3},
	{Difficulty: DifficultyEasy, Text: "Combien de continents y a-t-il sur Terre ?", Choices: []string{"5", "6", "7", "8"}, Answer: 2},
	{Difficulty: DifficultyEasy, Text: "Quelle est la monnaie utilisée au Japon ?", Choices: []string{"Yen", "Won", "Yuan", "Dollar"}, Answer: 0},
	{Difficulty: DifficultyEasy, Text: "Quel organe pompe le sang ?", Choices: []string{"Poumon", "Cerveau", "Cœur", "Foie"}, Answer: 2},
	{Difficulty: DifficultyEasy, Text: "Quelle est la planète la plus proche du Soleil ?", Choices: []string{"Mars", "Mercure", "Vénus", "Terre"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Dans quel pays se trouve Rome ?", Choices: []string{"Espagne", "Italie", "Grèce", "Portugal"}, Answer: 1},

	{Difficulty: DifficultyMedium, Text: "Quel est le plus petit nombre premier ?", Choices: []string{"0", "1", "2", "3"}, Answer: 2},
	{Difficulty: DifficultyMedium, Text: "En quelle année l'homme a-t-il marché sur la Lune pour la première fois ?", Choices: []string{"1965", "1969", "1972", "1959"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quelle est la formule chimique de l'eau ?", Choices: []string{"H2O", "CO2", "O2", "NaCl"}, Answer: 0},
	{Difficulty: DifficultyMedium, Text: "Quel pays a pour capitale Ottawa ?", Choices: []string{"Australie", "Canada", "Irlande", "Suède"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quelle est l'unité de mesure de la puissance électrique ?", Choices: []string{"Volt", "Ohm", "Watt", "Ampère"}, Answer: 2},
	{Difficulty: DifficultyMedium, Text: "Quel est le plus grand désert chaud du monde ?", Choices: []string{"Gobi", "Sahara", "Kalahari", "Atacama"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Qui a écrit '1984' ?", Choices: []string{"Aldous Huxley", "George Orwell", "Ray Bradbury", "Jules Verne"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quel est le résultat de 2^10 ?", Choices: []string{"512", "1024", "2048", "256"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quel métal est liquide à température ambiante (≈20°C) ?", Choices: []string{"Mercure", "Aluminium", "Fer", "Cuivre"}, Answer: 0},

	{Difficulty: DifficultyHard, Text: "Quelle est la dérivée de sin(x) ?", Choices: []string{"cos(x)", "-cos(x)", "sin(x)", "-sin(x)"}, Answer: 0},
	{Difficulty: DifficultyHard, Text: "Dans quel pays se trouve la région de Transylvanie ?", Choices: []string{"Hongrie", "Roumanie", "Bulgarie", "Slovaquie"}, Answer: 1},
	{Difficulty: DifficultyHard, Text: "Quel est le nom de la mer située au nord de la Turquie ?", Choices: []string{"Mer Égée", "Mer Adriatique", "Mer Noire", "Mer Baltique"}, Answer: 2},
	{Difficulty: DifficultyHard, Text: "Quel langage est principalement utilisé pour le noyau Linux ?", Choices: []string{"Python", "C", "Java", "Rust"}, Answer: 1},
	{Difficulty: DifficultyHard, Text: "En cryptographie, que signifie l'acronyme 'RSA' ?", Choices: []string{"Rivest–Shamir–Adleman", "Random Secure Algorithm", "Rapid Security Access", "Routed Signed Authentication"}, Answer: 0},
	{Difficulty: DifficultyHard, Text: "Quelle est la capitale constitutionnelle de la Bolivie ?", Choices: []string{"La Paz", "Sucre", "Santa Cruz", "Cochabamba"}, Answer: 1},
	{Difficulty: DifficultyHard, Text: "Quel paradoxe décrit un chat à la fois vivant et mort ?", Choices: []string{"Paradoxe d'Olbers", "Chat de Schrödinger", "Paradoxe de Fermi", "Paradoxe de Russell"}, Answer: 1},
	{Difficulty: DifficultyHard, Text: "Combien d'os compte le squelette humain adulte (valeur courante) ?", Choices: []string{"196", "206", "216", "226"}, Answer: 1},
}

var minecraftBank = []Question{
	{Difficulty: DifficultyEasy, Text: "Quel outil sert principalement à miner la pierre ?", Choices: []string{"Hache", "Pioche", "Pelle", "Faux"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quel mob explose quand il s'approche du joueur ?", Choices: []string{"Zombie", "Creeper", "Squelette", "Araignée"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quelle dimension est accessible via un portail en obsidienne allumé ?", Choices: []string{"L'End", "Le Nether", "Le Monde normal", "L'Aether"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quel objet faut-il pour allumer un portail du Nether ?", Choices: []string{"Briquet (silex et acier)", "Boussole", "Seau d'eau", "Arc"}, Answer: 0},
	{Difficulty: DifficultyEasy, Text: "Quel minerai donne des lingots après cuisson ?", Choices: []string{"Diamant", "Fer", "Redstone", "Lapis"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quel mob lâche des perles de l'Ender ?", Choices: []string{"Enderman", "Slime", "Ghast", "Blaze"}, Answer: 0},
	{Difficulty: DifficultyEasy, Text: "Quel est l'objectif final classique du jeu ?", Choices: []string{"Trouver le Warden", "Battre l'Ender Dragon", "Construire un village", "Atteindre le niveau 100"}, Answer: 1},
	{Difficulty: DifficultyEasy, Text: "Quelle armure est la plus résistante (vanilla) ?", Choices: []string{"Cuir", "Fer", "Diamant", "Netherite"}, Answer: 3},
	{Difficulty: DifficultyEasy, Text: "Quel animal peut être apprivoisé avec des os ?", Choices: []string{"Chat", "Chien (loup)", "Cheval", "Panda"}, Answer: 1},

	{Difficulty: DifficultyMedium, Text: "Quel item faut-il pour activer le portail de l'End ?", Choices: []string{"Perles de l'Ender", "Yeux de l'Ender", "Bâtons de blaze", "Poussière de redstone"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "De quoi est composé un œil de l'Ender (craft) ?", Choices: []string{"Perle de l'Ender + poudre de blaze", "Perle + poudre de redstone", "Diamant + blaze", "Lapis + perle"}, Answer: 0},
	{Difficulty: DifficultyMedium, Text: "Quel mob lâche des bâtons de blaze ?", Choices: []string{"Ghast", "Blaze", "Piglin", "Magma Cube"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quel enchantement augmente les drops d'un bloc/minerai ?", Choices: []string{"Efficacité", "Fortune", "Toucher de soie", "Solidité"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quel item est nécessaire pour fabriquer un piston collant ?", Choices: []string{"Boule de slime", "Miel", "Redstone", "Quartz"}, Answer: 0},
	{Difficulty: DifficultyMedium, Text: "Quel bloc sert de point de réapparition dans le Nether ?", Choices: []string{"Lit", "Ancre de réapparition", "Totem", "Coffre"}, Answer: 1},
	{Difficulty: DifficultyMedium, Text: "Quel enchantement permet de réparer un outil avec de l'XP ?", Choices: []string{"Raccommodage", "Solidité", "Efficacité", "Fortune"}, Answer: 0},

	{Difficulty: DifficultyHard, Text: "Combien d'yeux de l'Ender faut-il au maximum pour remplir le portail de l'End ?", Choices: []string{"9", "10", "12", "16"}, Answer: 2},
	{Difficulty: DifficultyHard, Text: "Quel bloc ne peut être miné qu'avec une pioche en diamant ou mieux ?", Choices: []string{"Fer", "Obsidienne", "Or", "Émeraude"}, Answer: 1},
	{Difficulty: DifficultyHard, Text: "Quel mob neutre attaque si on le regarde dans les yeux ?", Choices: []string{"Piglin", "Enderman", "Golem de fer", "Abeille"}, Answer: 1},
	{Difficulty: DifficultyHard, Text: "Quelle potion nécessite une larme de Ghast ?", Choices: []string{"Régénération", "Force", "Invisibilité", "Chute lente"}, Answer: 0},
}

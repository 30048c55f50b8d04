// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Bot      BotConfig      `mapstructure:"bot"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Games    GamesConfig    `mapstructure:"games"`
}

// BotConfig holds Discord bot configuration.
type BotConfig struct {
	Token          string `mapstructure:"token"`
	AppID          string `mapstructure:"app_id"`
	GuildID        string `mapstructure:"guild_id"`
	SuggestChannel string `mapstructure:"suggest_channel"`
}

// StorageConfig selects the score persistence backend.
type StorageConfig struct {
	// Backend is "json" (flat file) or "postgres".
	Backend      string `mapstructure:"backend"`
	ScoreFile    string `mapstructure:"score_file"`
	BanwordsFile string `mapstructure:"banwords_file"`
}

// DatabaseConfig holds PostgreSQL connection configuration, used when the
// postgres storage backend is selected.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// ServerConfig holds the Minecraft server info surfaced by info commands.
type ServerConfig struct {
	SiteURL    string `mapstructure:"site_url"`
	Version    string `mapstructure:"version"`
	ModpackURL string `mapstructure:"modpack_url"`
	IP         string `mapstructure:"ip"`
}

// GamesConfig holds game tuning.
type GamesConfig struct {
	Quiz      QuizConfig      `mapstructure:"quiz"`
	TicTacToe TicTacToeConfig `mapstructure:"tictactoe"`
	Guess     GuessConfig     `mapstructure:"guess"`
	Hangman   HangmanConfig   `mapstructure:"hangman"`
	// SessionTTL enables eviction of abandoned sessions when positive.
	// Zero keeps sessions until the process restarts.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// QuizConfig holds quiz reward configuration per difficulty.
type QuizConfig struct {
	RewardEasy   int `mapstructure:"reward_easy"`
	RewardMedium int `mapstructure:"reward_medium"`
	RewardHard   int `mapstructure:"reward_hard"`
}

// TicTacToeConfig holds tic-tac-toe reward configuration.
type TicTacToeConfig struct {
	RewardWin int `mapstructure:"reward_win"`
}

// GuessConfig holds guess-the-number configuration.
type GuessConfig struct {
	RewardWin int `mapstructure:"reward_win"`
}

// HangmanConfig holds hangman configuration.
type HangmanConfig struct {
	Tries       int `mapstructure:"tries"`
	RewardWin   int `mapstructure:"reward_win"`
	PenaltyLoss int `mapstructure:"penalty_loss"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. BOT_TOKEN, STORAGE_BACKEND, DATABASE_HOST.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - env vars can provide all config
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Game rewards default to the
// historical values: quiz 2/3/5 by difficulty, tic-tac-toe +5, guess +3,
// hangman +4 / -2 with 6 tries.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", "json")
	v.SetDefault("storage.score_file", "leaderboard.json")
	v.SetDefault("storage.banwords_file", "banned_words.json")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "arcadebot")
	v.SetDefault("database.name", "arcadebot")
	v.SetDefault("database.pool_size", 10)
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "30m")

	v.SetDefault("server.site_url", "http://plairepoilue.click")
	v.SetDefault("server.version", "1.20.1")
	v.SetDefault("server.modpack_url", "https://www.curseforge.com/minecraft/modpacks/better-mc-forge-bmc4")
	v.SetDefault("server.ip", "play.plairepoilue.click")

	v.SetDefault("games.quiz.reward_easy", 2)
	v.SetDefault("games.quiz.reward_medium", 3)
	v.SetDefault("games.quiz.reward_hard", 5)
	v.SetDefault("games.tictactoe.reward_win", 5)
	v.SetDefault("games.guess.reward_win", 3)
	v.SetDefault("games.hangman.tries", 6)
	v.SetDefault("games.hangman.reward_win", 4)
	v.SetDefault("games.hangman.penalty_loss", 2)
	v.SetDefault("games.session_ttl", "0s")
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot token is required")
	}
	if c.Bot.AppID == "" {
		return fmt.Errorf("bot app_id is required")
	}
	if c.Storage.Backend != "json" && c.Storage.Backend != "postgres" {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"tokenbot/database"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Primary Discord guild ID (empty registers commands globally)

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Owner configuration
	OwnerDiscordIDs []int64 // Discord IDs that bypass the quiz cooldown and may grant tokens

	// Economy configuration
	DailyCooldown  time.Duration
	DailyRewardMin int64
	DailyRewardMax int64
	WorkRewardMin  int64
	WorkRewardMax  int64

	// Quiz configuration
	QuizCooldown time.Duration
	QuizTimeout  time.Duration
	QuizPrize    int64

	// Leaderboard configuration
	LeaderboardSize int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// IsOwner reports whether the Discord ID is on the owner allowlist
func (c *Config) IsOwner(discordID int64) bool {
	for _, id := range c.OwnerDiscordIDs {
		if id == discordID {
			return true
		}
	}
	return false
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Economy defaults
		DailyCooldown:  24 * time.Hour,
		DailyRewardMin: 1000,
		DailyRewardMax: 5000,
		WorkRewardMin:  100,
		WorkRewardMax:  1000,

		// Quiz defaults
		QuizCooldown: time.Hour,
		QuizTimeout:  30 * time.Second,
		QuizPrize:    50000,

		LeaderboardSize: 10,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if cooldown := os.Getenv("DAILY_COOLDOWN"); cooldown != "" {
		if parsed, err := time.ParseDuration(cooldown); err == nil {
			config.DailyCooldown = parsed
		}
	}
	if cooldown := os.Getenv("QUIZ_COOLDOWN"); cooldown != "" {
		if parsed, err := time.ParseDuration(cooldown); err == nil {
			config.QuizCooldown = parsed
		}
	}
	if prize := os.Getenv("QUIZ_PRIZE"); prize != "" {
		if parsed, err := strconv.ParseInt(prize, 10, 64); err == nil {
			config.QuizPrize = parsed
		}
	}

	// Parse owner Discord IDs
	if ownerIDs := os.Getenv("OWNER_DISCORD_IDS"); ownerIDs != "" {
		idStrings := strings.Split(ownerIDs, ",")
		for _, idStr := range idStrings {
			idStr = strings.TrimSpace(idStr)
			if idStr != "" {
				if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
					config.OwnerDiscordIDs = append(config.OwnerDiscordIDs, id)
				}
			}
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:     "test",
		DiscordToken:    "test-token",
		OwnerDiscordIDs: []int64{999999},
		DailyCooldown:   24 * time.Hour,
		DailyRewardMin:  1000,
		DailyRewardMax:  5000,
		WorkRewardMin:   100,
		WorkRewardMax:   1000,
		QuizCooldown:    time.Hour,
		QuizTimeout:     30 * time.Second,
		QuizPrize:       50000,
		LeaderboardSize: 10,
	}
}

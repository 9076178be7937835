package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Booking BookingConfig
	Session SessionConfig
	Slots   SlotConfig
	Payment PaymentConfig
	Auth    AuthConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	Path string
}

type BookingConfig struct {
	// Fee is the fixed amount collected online; the remainder is paid at the venue.
	Fee int
}

type SessionConfig struct {
	ExpiryHours int
}

type SlotConfig struct {
	// Policy selects how unseen slots get their initial status: "random" or "blackout".
	Policy     string
	RandomSeed int64
}

type PaymentConfig struct {
	DelayMs     int
	MaxAttempts int
}

type AuthConfig struct {
	LoginDelayMs int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "turf-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_PATH", "data/galli2ground.json")
	viper.SetDefault("BOOKING_FEE", 100)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SLOT_POLICY", "random")
	viper.SetDefault("SLOT_RANDOM_SEED", 0)
	viper.SetDefault("PAYMENT_DELAY_MS", 800)
	viper.SetDefault("PAYMENT_MAX_ATTEMPTS", 3)
	viper.SetDefault("LOGIN_DELAY_MS", 1000)

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env just means run on defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Path: viper.GetString("DATA_PATH"),
		},
		Booking: BookingConfig{
			Fee: viper.GetInt("BOOKING_FEE"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Slots: SlotConfig{
			Policy:     viper.GetString("SLOT_POLICY"),
			RandomSeed: viper.GetInt64("SLOT_RANDOM_SEED"),
		},
		Payment: PaymentConfig{
			DelayMs:     viper.GetInt("PAYMENT_DELAY_MS"),
			MaxAttempts: viper.GetInt("PAYMENT_MAX_ATTEMPTS"),
		},
		Auth: AuthConfig{
			LoginDelayMs: viper.GetInt("LOGIN_DELAY_MS"),
		},
	}

	return config, nil
}

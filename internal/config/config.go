package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // access token TTL in minutes
	} `yaml:"jwt"`

	AI struct {
		Provider string `yaml:"provider"` // openai, anthropic

		OpenAI struct {
			APIKey             string `yaml:"api_key"`
			Model              string `yaml:"model"`
			TranscriptionModel string `yaml:"transcription_model"`
			BaseURL            string `yaml:"base_url"`
		} `yaml:"openai"`

		Anthropic struct {
			APIKey  string `yaml:"api_key"`
			Model   string `yaml:"model"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"anthropic"`

		RequestTimeoutSec int `yaml:"request_timeout_sec"`
		MaxTokens         int `yaml:"max_tokens"`
	} `yaml:"ai"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3
		SecretKey string `yaml:"secret_key"` // for S3
		Endpoint  string `yaml:"endpoint"`   // for custom S3 endpoints
	} `yaml:"storage"`

	Upload struct {
		MaxAudioSize      int64    `yaml:"max_audio_size"`
		MaxImageSize      int64    `yaml:"max_image_size"`
		AllowedAudioTypes []string `yaml:"allowed_audio_types"`
		AllowedImageTypes []string `yaml:"allowed_image_types"`
	} `yaml:"upload"`

	Reminders struct {
		Enabled     bool `yaml:"enabled"`
		HoursAhead  int  `yaml:"hours_ahead"`
		IntervalMin int  `yaml:"interval_min"`
	} `yaml:"reminders"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml (or CONFIG_PATH) unless a
// DATABASE_URL is present in the environment, in which case the
// environment takes over entirely. The env mode is what the test
// suite uses.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.AI.Provider = os.Getenv("AI_PROVIDER")
	cfg.AI.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/recordings/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.AI.OpenAI.BaseURL == "" {
		cfg.AI.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.AI.OpenAI.Model == "" {
		cfg.AI.OpenAI.Model = "gpt-4o"
	}
	if cfg.AI.OpenAI.TranscriptionModel == "" {
		cfg.AI.OpenAI.TranscriptionModel = "whisper-1"
	}
	if cfg.AI.Anthropic.BaseURL == "" {
		cfg.AI.Anthropic.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.AI.Anthropic.Model == "" {
		cfg.AI.Anthropic.Model = "claude-3-5-sonnet-20241022"
	}
	if cfg.AI.RequestTimeoutSec == 0 {
		cfg.AI.RequestTimeoutSec = 120
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 2048
	}

	if cfg.Upload.MaxAudioSize == 0 {
		cfg.Upload.MaxAudioSize = 50 * 1024 * 1024 // 50MB
	}
	if cfg.Upload.MaxImageSize == 0 {
		cfg.Upload.MaxImageSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedAudioTypes) == 0 {
		cfg.Upload.AllowedAudioTypes = []string{
			"audio/mpeg", "audio/mp4", "audio/wav", "audio/webm", "audio/ogg",
		}
	}
	if len(cfg.Upload.AllowedImageTypes) == 0 {
		cfg.Upload.AllowedImageTypes = []string{
			"image/jpeg", "image/png", "image/webp",
		}
	}

	if cfg.Reminders.HoursAhead == 0 {
		cfg.Reminders.HoursAhead = 24
	}
	if cfg.Reminders.IntervalMin == 0 {
		cfg.Reminders.IntervalMin = 15
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Generation GenerationConfig
	Redis      RedisConfig
	Session    SessionConfig
	Paper      PaperConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type GenerationConfig struct {
	// Provider selects the text-generation backend: "gemini" or "ollama".
	Provider string
	Gemini   GeminiConfig
	Ollama   OllamaConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL time.Duration
}

type PaperConfig struct {
	Title         string
	Subtitle      string
	Duration      string
	StylesheetURL string
}

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("generation.provider", ProviderGemini)
	v.SetDefault("generation.gemini.model", "gemini-2.5-flash-preview-05-20")
	v.SetDefault("generation.gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("generation.ollama.server_url", "http://localhost:11434")
	v.SetDefault("generation.ollama.model", "qwen3:0.6b")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("paper.title", "Question Paper")
	v.SetDefault("paper.subtitle", "Machine Learning (Advanced Deep Learning)")
	v.SetDefault("paper.duration", "3 Hours")
	v.SetDefault("paper.stylesheet_url", "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css")
}

// LoadConfig reads config.yaml when present and applies defaults and
// environment overrides. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Generation: GenerationConfig{
			Provider: v.GetString("generation.provider"),
			Gemini: GeminiConfig{
				APIKey:  v.GetString("generation.gemini.api_key"),
				Model:   v.GetString("generation.gemini.model"),
				BaseURL: v.GetString("generation.gemini.base_url"),
			},
			Ollama: OllamaConfig{
				ServerURL: v.GetString("generation.ollama.server_url"),
				Model:     v.GetString("generation.ollama.model"),
			},
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Session: SessionConfig{
			TTL: v.GetDuration("session.ttl"),
		},
		Paper: PaperConfig{
			Title:         v.GetString("paper.title"),
			Subtitle:      v.GetString("paper.subtitle"),
			Duration:      v.GetString("paper.duration"),
			StylesheetURL: v.GetString("paper.stylesheet_url"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		v.Set("server.port", port)
		config.Server.Port = v.GetInt("server.port")
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if provider := os.Getenv("GENERATION_PROVIDER"); provider != "" {
		config.Generation.Provider = provider
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Generation.Gemini.APIKey = apiKey
	}
	if serverURL := os.Getenv("OLLAMA_SERVER_URL"); serverURL != "" {
		config.Generation.Ollama.ServerURL = serverURL
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config
}

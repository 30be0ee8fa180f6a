package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings is read once at startup and passed to whoever needs it.
type Settings struct {
	GroqAPIKey     string        `envconfig:"GROQ_API_KEY"`
	GroqAPIURL     string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com/openai/v1/chat/completions"`
	GroqModel      string        `envconfig:"GROQ_MODEL" default:"mixtral-8x7b-32768"`
	Temperature    float64       `envconfig:"GROQ_TEMPERATURE" default:"0.7"`
	RequestTimeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
	Host           string        `envconfig:"HTTP_SERVER_HOST" default:"127.0.0.1"`
	Port           int           `envconfig:"HTTP_SERVER_PORT" default:"8080"`
}

// Addr is the listen address of the http server.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Init loads the env files of the current APP_ENV from the config dir.
// Missing files are skipped, variables already set in the process are kept.
func Init() {
	// Getting configuration dir
	exPath, err := os.Getwd()
	if err != nil {
		log.Fatal("Error getting working dir ", err)
	}
	exPath += "/config/"

	appEnv, exists := os.LookupEnv("APP_ENV")
	if !exists {
		appEnv = "dev"
	}

	if err := LoadFiles(exPath+".env."+appEnv+".local", exPath+".env."+appEnv); err != nil {
		log.Fatal("Error loading env files ", err)
	}
}

// LoadFiles loads every existing file of the list into the process env.
func LoadFiles(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		log.Println("No env files found, using process environment")
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return err
	}
	log.Printf("Loaded ENV variables from %v", existing)
	return nil
}

// Load reads Settings from the environment.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &s, nil
}

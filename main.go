package main

import (
	"log"

	"github.com/voyage-finance/ai-graphql-server/config"
	"github.com/voyage-finance/ai-graphql-server/http_server"
	"github.com/voyage-finance/ai-graphql-server/service"
)

func main() {
	config.Init()

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if settings.GroqAPIKey == "" {
		log.Println("GROQ_API_KEY is not set, upstream calls will be unauthorized")
	}

	s := service.New(settings)
	http_server.HandleRequests(settings, s)
}

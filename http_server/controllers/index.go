package controllers

import (
	"github.com/voyage-finance/ai-graphql-server/models"
	"net/http"
)

const welcomeMessage = "Welcome to the AI Recommendation GraphQL API"

func Index() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ReturnJson(rw, http.StatusOK, models.WelcomeResponse{Message: welcomeMessage})
	}
}

package routes

import (
	"github.com/gorilla/mux"
	"github.com/voyage-finance/ai-graphql-server/http_server/controllers"
)

func IndexRoute(router *mux.Router) {
	router.HandleFunc("/", controllers.Index()).Methods("GET")
}

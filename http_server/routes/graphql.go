package routes

import (
	"github.com/gorilla/mux"
	"github.com/voyage-finance/ai-graphql-server/http_server/controllers"
	"github.com/voyage-finance/ai-graphql-server/schema"
)

// both spellings are served directly, a redirect would turn a POST into a GET
var graphqlPaths = []string{"/graphql", "/graphql/"}

func GraphQLRoute(router *mux.Router, gql *schema.Schema) {
	for _, path := range graphqlPaths {
		router.HandleFunc(path, controllers.GraphQLQuery(gql)).Methods("GET")
		router.HandleFunc(path, controllers.GraphQLExecute(gql)).Methods("POST")
	}
}

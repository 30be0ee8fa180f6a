package http_server

import (
	"github.com/gorilla/mux"
	"github.com/voyage-finance/ai-graphql-server/config"
	"github.com/voyage-finance/ai-graphql-server/http_server/routes"
	"github.com/voyage-finance/ai-graphql-server/schema"
	"log"
	"net/http"
	"time"
)

func NewRouter(resolver schema.Resolver) (*mux.Router, error) {
	gql, err := schema.New(resolver)
	if err != nil {
		return nil, err
	}
	// creates a new instance of a mux router
	router := mux.NewRouter()
	router.Use(logRequests)
	routes.IndexRoute(router)
	routes.GraphQLRoute(router, gql)
	return router, nil
}

func HandleRequests(settings *config.Settings, resolver schema.Resolver) {
	router, err := NewRouter(resolver)
	if err != nil {
		log.Fatal("Error building GraphQL schema ", err)
	}

	// server run
	addr := settings.Addr()
	log.Printf("GraphQL server is running under: http://%v/graphql", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(rw, r)
		log.Printf("%s %s %v\n", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

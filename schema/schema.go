// Package schema builds the GraphQL schema served under /graphql.
package schema

import (
	"context"

	"github.com/graphql-go/graphql"
	"github.com/voyage-finance/ai-graphql-server/models"
)

// Resolver answers the root query fields. QueryAI reports failures in the
// returned text, Recommend returns them as an error.
type Resolver interface {
	QueryAI(ctx context.Context, query string) string
	Recommend(ctx context.Context, thoughtMap string) (string, error)
}

type Schema struct {
	schema graphql.Schema
}

// New builds the root Query type:
//
//	type Query {
//	    queryAi(query: String!): String
//	    getRecommendation(thoughtMap: String!): String!
//	}
func New(resolver Resolver) (*Schema, error) {
	fields := graphql.Fields{
		"queryAi": &graphql.Field{
			Type:        graphql.String,
			Description: "Forwards the query to the language model and returns its answer.",
			Args: graphql.FieldConfigArgument{
				"query": &graphql.ArgumentConfig{
					Type: graphql.NewNonNull(graphql.String),
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				query, _ := p.Args["query"].(string)
				return resolver.QueryAI(p.Context, query), nil
			},
		},
		"getRecommendation": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "Recommendation for the given thought map.",
			Args: graphql.FieldConfigArgument{
				"thoughtMap": &graphql.ArgumentConfig{
					Type: graphql.NewNonNull(graphql.String),
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				thoughtMap, _ := p.Args["thoughtMap"].(string)
				return resolver.Recommend(p.Context, thoughtMap)
			},
		},
	}
	s, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: fields}),
	})
	if err != nil {
		return nil, err
	}
	return &Schema{schema: s}, nil
}

func (s *Schema) Execute(ctx context.Context, req models.GraphQLRequest) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}

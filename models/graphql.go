package models

// GraphQLRequest is the GraphQL over HTTP envelope.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}

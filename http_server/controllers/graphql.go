package controllers

import (
	"encoding/json"
	"fmt"
	"github.com/thedevsaddam/govalidator"
	"github.com/voyage-finance/ai-graphql-server/models"
	"github.com/voyage-finance/ai-graphql-server/schema"
	"golang.org/x/exp/slices"
	"io"
	"mime"
	"net/http"
)

const graphqlMediaType = "application/graphql"

// an absent Content-Type is read as json
var jsonMediaTypes = []string{"application/json", ""}

// GraphQLQuery serves GET /graphql?query=...&operationName=...&variables=...
func GraphQLQuery(gql *schema.Schema) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rules := govalidator.MapData{
			"query": []string{"required"},
		}
		opts := govalidator.Options{
			Request: r,
			Rules:   rules,
		}
		e := govalidator.New(opts).Validate()
		if len(e) != 0 {
			ReturnJson(rw, http.StatusBadRequest, map[string]interface{}{"validationError": e})
			return
		}

		params := r.URL.Query()
		request := models.GraphQLRequest{
			Query:         params.Get("query"),
			OperationName: params.Get("operationName"),
		}
		if v := params.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &request.Variables); err != nil {
				ReturnHttpBadResponse(rw, fmt.Sprintf("Variables are invalid JSON: %s", err.Error()))
				return
			}
		}

		ReturnJson(rw, http.StatusOK, gql.Execute(r.Context(), request))
	}
}

// GraphQLExecute serves POST /graphql with either a json envelope or a raw
// application/graphql document as body.
func GraphQLExecute(gql *schema.Schema) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			mediaType = ""
		}

		var request models.GraphQLRequest
		switch {
		case mediaType == graphqlMediaType:
			body, err := io.ReadAll(r.Body)
			if err != nil {
				ReturnHttpBadResponse(rw, fmt.Sprintf("Read body failed: %s", err.Error()))
				return
			}
			request.Query = string(body)
		case slices.Contains(jsonMediaTypes, mediaType):
			rules := govalidator.MapData{
				"query": []string{"required"},
			}
			opts := govalidator.Options{
				Request: r,
				Data:    &request,
				Rules:   rules,
			}
			e := govalidator.New(opts).ValidateJSON()
			// 1.0 if body of request is not valid
			if len(e) != 0 {
				ReturnJson(rw, http.StatusBadRequest, map[string]interface{}{"validationError": e})
				return
			}
		default:
			ReturnJson(rw, http.StatusUnsupportedMediaType, ErrorResponse{Error: fmt.Sprintf("Unsupported Content-Type %q", mediaType)})
			return
		}

		ReturnJson(rw, http.StatusOK, gql.Execute(r.Context(), request))
	}
}

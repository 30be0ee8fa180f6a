package controllers

import (
	"encoding/json"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func ReturnHttpBadResponse(rw http.ResponseWriter, response string) {
	ReturnJson(rw, http.StatusBadRequest, ErrorResponse{Error: response})
	log.Println(response)
}

func ReturnJson(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		log.Printf("Encode response failed, error: %s\n", err.Error())
	}
}

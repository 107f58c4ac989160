package handler

import (
	"encoding/json"
	"net/http"

	"payvessel-bridge/internal/verify"
)

// Response is the wire shape of every verify answer. Success carries Data,
// failure carries Message.
type Response struct {
	Status  bool            `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    []verify.Result `json:"data,omitempty"`
}

func Success(result *verify.Result) Response {
	return Response{Status: true, Data: []verify.Result{*result}}
}

func Failure(message string) Response {
	return Response{Status: false, Message: message}
}

func WriteJSON(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

package server

import (
	"net/http"
)

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /score", handler.HandleScore)
	mux.HandleFunc("GET /health", handler.HandleHealth)
}

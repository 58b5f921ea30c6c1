package handler

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ping answers "pong" for liveness checks.
func Ping(w http.ResponseWriter, r *http.Request) {
	Text(w, http.StatusOK, "pong")
}

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"fpsrelay/internal/game"
)

type statusResponse struct {
	Players int           `json:"players"`
	Roster  []game.Player `json:"roster"`
}

// HandleStatus reports the live roster as JSON. Read-only; useful for server
// lists and health checks.
func HandleStatus(relay *Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		roster := relay.Roster()
		resp := statusResponse{Players: len(roster), Roster: roster}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("[status] encode error: %v", err)
		}
	}
}

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/tracks"

	"gorm.io/gorm"
)

type RaceResponse struct {
	ID        uint   `json:"id"`
	Track     string `json:"track"`
	TrackName string `json:"track_name"`
	Mode      string `json:"mode"`
	Result    int    `json:"result"`
}

// PlayerResponse is the public profile payload. The API key is never
// part of it.
type PlayerResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Team        string         `json:"team,omitempty"`
	DiscordName string         `json:"discord_name"`
	Races       []RaceResponse `json:"races"`
}

type TrackResponse struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

func ServePlayerHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Invalid player ID", http.StatusBadRequest)
			return
		}

		var player models.Player
		err = db.First(&player, playerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Failed to load player %d: %v", playerID, err)
			http.Error(w, "Failed to load player", http.StatusInternalServerError)
			return
		}

		var races []models.Race
		err = db.Where("player_id = ?", player.ID).Order("id").Find(&races).Error
		if err != nil {
			log.Printf("Failed to load races for player %d: %v", playerID, err)
			http.Error(w, "Failed to load races", http.StatusInternalServerError)
			return
		}

		result := PlayerResponse{
			ID:          player.ID,
			Name:        player.Name,
			Team:        player.Team,
			DiscordName: player.DiscordName,
			Races:       make([]RaceResponse, 0, len(races)),
		}
		for _, race := range races {
			result.Races = append(result.Races, RaceResponse{
				ID:        race.ID,
				Track:     race.Track,
				TrackName: tracks.DisplayName(race.Track),
				Mode:      race.Mode,
				Result:    race.Result,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func ServeTracksHandler() http.HandlerFunc {
	var results []TrackResponse
	for _, track := range tracks.All() {
		results = append(results, TrackResponse{Abbrev: track.Abbrev, Name: track.Name})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

func withCORS(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h(w, r)
	}
}

func StartWS(DB *gorm.DB, addr string) {
	http.HandleFunc("GET /players/{id}", withCORS(ServePlayerHandler(DB)))
	http.HandleFunc("GET /tracks", withCORS(ServeTracksHandler()))

	log.Printf("Web server listening on %s", addr)
	err := http.ListenAndServe(addr, nil)
	if err != nil {
		log.Fatalf("Web server failed: %v", err)
	}
}

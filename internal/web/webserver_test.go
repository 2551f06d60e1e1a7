package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Player{}, &models.Race{}))
	return db
}

func playerMux(db *gorm.DB) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /players/{id}", ServePlayerHandler(db))
	return mux
}

func TestServePlayerHandler(t *testing.T) {
	db := newTestDB(t)

	apiKey := "aaaabbbbccccddddeeeeffff00001111"
	player := models.Player{Name: "Yoshi", DiscordID: "1001", DiscordName: "yoshi_main", Team: "Mushroom Kingdom", APIKey: &apiKey}
	require.NoError(t, db.Create(&player).Error)
	require.NoError(t, db.Create(&models.Race{
		PlayerID: player.ID, DiscordID: "1001", Track: "MKS", Mode: models.ModeCasual, Result: 1,
	}).Error)

	rec := httptest.NewRecorder()
	playerMux(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), apiKey, "API key must never be served")

	var resp PlayerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Yoshi", resp.Name)
	assert.Equal(t, "Mushroom Kingdom", resp.Team)
	require.Len(t, resp.Races, 1)
	assert.Equal(t, "MKS", resp.Races[0].Track)
	assert.Equal(t, "Mario Kart Stadium", resp.Races[0].TrackName)
	assert.Equal(t, 1, resp.Races[0].Result)
}

func TestServePlayerHandlerNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	playerMux(newTestDB(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServePlayerHandlerBadID(t *testing.T) {
	rec := httptest.NewRecorder()
	playerMux(newTestDB(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/yoshi", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeTracksHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	ServeTracksHandler()(rec, httptest.NewRequest(http.MethodGet, "/tracks", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []TrackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 96)
	assert.Equal(t, TrackResponse{Abbrev: "MKS", Name: "Mario Kart Stadium"}, resp[0])
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	withCORS(ServeTracksHandler())(rec, httptest.NewRequest(http.MethodOptions, "/tracks", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

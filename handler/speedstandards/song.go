package speedstandards

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mager/woodshed/util"
	"go.uber.org/zap"
)

// UpdateSongHandler records new tempos for a song.
type UpdateSongHandler struct {
	log   *zap.SugaredLogger
	songs SongStore
}

func (*UpdateSongHandler) Pattern() string {
	return prefix + "/song/{id}"
}

func (*UpdateSongHandler) Method() string {
	return http.MethodPatch
}

func NewUpdateSongHandler(log *zap.SugaredLogger, songs SongStore) *UpdateSongHandler {
	return &UpdateSongHandler{log: log, songs: songs}
}

// UpdateSongRequest carries tempos in BPM. Missing fields are zero.
type UpdateSongRequest struct {
	Achieved float64 `json:"achieved"`
	Target   float64 `json:"target"`
}

// Update song progress
// @Summary Update song progress
// @Tags SpeedStandards
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param request body UpdateSongRequest true "New tempos"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/speed-standards/song/{id} [patch]
func (h *UpdateSongHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		util.WriteError(w, h.log, http.StatusBadRequest, "Invalid song id")
		return
	}

	var req UpdateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	found, err := h.songs.UpdateProgress(r.Context(), id, req.Achieved, req.Target)
	if err != nil {
		h.log.Errorw("Failed to update song", "id", id, "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to update song")
		return
	}
	if !found {
		util.WriteError(w, h.log, http.StatusNotFound, "Song not found")
		return
	}

	h.log.Infow("song updated", "id", id, "achieved", req.Achieved, "target", req.Target)
	util.WriteJSON(w, h.log, http.StatusOK, SuccessResponse{Success: true, ID: id})
}

// CreateSongHandler adds a song to the repertoire.
type CreateSongHandler struct {
	log   *zap.SugaredLogger
	songs SongStore
}

func (*CreateSongHandler) Pattern() string {
	return prefix + "/song"
}

func (*CreateSongHandler) Method() string {
	return http.MethodPost
}

func NewCreateSongHandler(log *zap.SugaredLogger, songs SongStore) *CreateSongHandler {
	return &CreateSongHandler{log: log, songs: songs}
}

type CreateSongRequest struct {
	Title    string  `json:"title"`
	Achieved float64 `json:"achieved"`
	Target   float64 `json:"target"`
}

// Create song
// @Summary Add a song
// @Tags SpeedStandards
// @Accept json
// @Produce json
// @Param request body CreateSongRequest true "Song"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /api/speed-standards/song [post]
func (h *CreateSongHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		util.WriteError(w, h.log, http.StatusBadRequest, "Title is required")
		return
	}

	id, err := h.songs.Add(r.Context(), title, req.Achieved, req.Target)
	if err != nil {
		h.log.Errorw("Failed to add song", "title", title, "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to add song")
		return
	}

	h.log.Infow("song added", "id", id, "title", title)
	util.WriteJSON(w, h.log, http.StatusCreated, SuccessResponse{Success: true, ID: id})
}

package speedstandards

import (
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/mager/woodshed/practice"
	"github.com/mager/woodshed/util"
	"go.uber.org/zap"
)

// PracticeHandler picks the next song to practice.
type PracticeHandler struct {
	log   *zap.SugaredLogger
	songs SongStore
	rng   *rand.Rand
}

func (*PracticeHandler) Pattern() string {
	return prefix + "/practice"
}

func (*PracticeHandler) Method() string {
	return http.MethodGet
}

func NewPracticeHandler(log *zap.SugaredLogger, songs SongStore, rng *rand.Rand) *PracticeHandler {
	return &PracticeHandler{log: log, songs: songs, rng: rng}
}

// Song to practice
// @Summary Pick a song to practice
// @Description Unachieved songs first, then weighted by distance from target tempo
// @Tags SpeedStandards
// @Produce json
// @Success 200 {object} woodshed.Song
// @Failure 404 {object} util.ErrorResponse
// @Router /api/speed-standards/practice [get]
func (h *PracticeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.List(r.Context())
	if err != nil {
		h.log.Errorw("Failed to list repertoire", "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to load repertoire")
		return
	}

	song, err := practice.SongToPractice(h.rng, songs)
	if errors.Is(err, practice.ErrEmptyRepertoire) {
		util.WriteError(w, h.log, http.StatusNotFound, "No songs available in repertoire")
		return
	}
	if err != nil {
		h.log.Errorw("Failed to pick song", "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to pick song")
		return
	}

	h.log.Infow("song to practice", "id", song.ID, "title", song.Title)
	util.WriteJSON(w, h.log, http.StatusOK, song)
}

package speedstandards

import (
	"net/http"

	"github.com/mager/woodshed/util"
	"go.uber.org/zap"
)

// RepertoireHandler lists every song.
type RepertoireHandler struct {
	log   *zap.SugaredLogger
	songs SongStore
}

func (*RepertoireHandler) Pattern() string {
	return prefix + "/repertoire"
}

func (*RepertoireHandler) Method() string {
	return http.MethodGet
}

func NewRepertoireHandler(log *zap.SugaredLogger, songs SongStore) *RepertoireHandler {
	return &RepertoireHandler{log: log, songs: songs}
}

// Get repertoire
// @Summary List songs
// @Description List the speed standards repertoire ordered by title
// @Tags SpeedStandards
// @Produce json
// @Success 200 {array} woodshed.Song
// @Router /api/speed-standards/repertoire [get]
func (h *RepertoireHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.List(r.Context())
	if err != nil {
		h.log.Errorw("Failed to list repertoire", "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to load repertoire")
		return
	}

	h.log.Infow("repertoire", "songs", len(songs))
	util.WriteJSON(w, h.log, http.StatusOK, songs)
}

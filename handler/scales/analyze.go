package scales

import (
	"net/http"

	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/scale"
	"github.com/mager/woodshed/util"
	"github.com/mager/woodshed/woodshed"
	"go.uber.org/zap"
)

// AnalyzeHandler describes a single pitch-class set.
type AnalyzeHandler struct {
	log *zap.SugaredLogger
	cfg config.Config
}

func (*AnalyzeHandler) Pattern() string {
	return prefix + "/analyze"
}

func (*AnalyzeHandler) Method() string {
	return http.MethodGet
}

func NewAnalyzeHandler(log *zap.SugaredLogger, cfg config.Config) *AnalyzeHandler {
	return &AnalyzeHandler{log: log, cfg: cfg}
}

// Analyze scale
// @Summary Analyze a pitch-class set
// @Tags Scales
// @Produce json
// @Param notes query string true "Comma-separated pitch classes 0-11, e.g. 0,2,4,5,7,9,11"
// @Param alpha query number false "Rotation bias (default 0.1)"
// @Success 200 {object} woodshed.ScaleAnalysis
// @Failure 400 {object} util.ErrorResponse
// @Router /api/scales/analyze [get]
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	alpha, err := parseAlpha(q.Get("alpha"), h.cfg.DefaultAlpha)
	if err != nil {
		util.WriteError(w, h.log, http.StatusBadRequest, "alpha must be a number")
		return
	}

	s, err := scale.ParseScale(q.Get("notes"))
	if err != nil {
		util.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}
	if s.Len() == 0 {
		util.WriteError(w, h.log, http.StatusBadRequest, "notes is required")
		return
	}

	pcs := make([]int, 0, s.Len())
	for _, p := range s.Notes() {
		pcs = append(pcs, int(p))
	}

	resp := woodshed.ScaleAnalysis{
		Notes:            s.Names(),
		PitchClasses:     pcs,
		IntervalPattern:  scale.IntervalPattern(s).String(),
		CanonicalPattern: scale.CanonicalPattern(s).String(),
		Major:            scale.IsMajor(s),
		Alpha:            alpha,
		RawMagnitude:     util.Round(scale.RawMagnitude(s), 4),
		RotatedMagnitude: util.Round(scale.RotatedMagnitude(s, alpha), 4),
	}

	h.log.Infow("scale analysis", "scale", s.String(), "alpha", alpha)
	util.WriteJSON(w, h.log, http.StatusOK, resp)
}

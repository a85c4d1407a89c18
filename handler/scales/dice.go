package scales

import (
	"math/rand/v2"
	"net/http"

	"github.com/mager/woodshed/notation"
	"github.com/mager/woodshed/scale"
	"github.com/mager/woodshed/util"
	"github.com/mager/woodshed/woodshed"
	"go.uber.org/zap"
)

// DiceHandler rolls a random 2d6 scale.
type DiceHandler struct {
	log *zap.SugaredLogger
	rng *rand.Rand
}

func (*DiceHandler) Pattern() string {
	return prefix + "/2d6"
}

func (*DiceHandler) Method() string {
	return http.MethodGet
}

func NewDiceHandler(log *zap.SugaredLogger, rng *rand.Rand) *DiceHandler {
	return &DiceHandler{log: log, rng: rng}
}

// Generate 2d6 scale
// @Summary Roll a random scale
// @Description Steps are the lower of two d6 rolls; notes are spelled for a treble staff
// @Tags Scales
// @Produce json
// @Success 200 {object} woodshed.GeneratedScale
// @Router /api/scales/2d6 [get]
func (h *DiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	semitones := scale.Ascending(scale.Generate2d6(h.rng))
	notes := notation.OptimizeForTrebleClef(notation.ChooseAccidentals(semitones))

	spelled := make([]string, len(notes))
	for i, n := range notes {
		spelled[i] = n.String()
	}

	resp := woodshed.GeneratedScale{
		Semitones:       semitones,
		Notes:           notes,
		Spelled:         spelled,
		IntervalPattern: scale.IntervalPattern(scale.New(semitones...)).String(),
	}

	h.log.Infow("2d6 scale", "spelled", spelled)
	util.WriteJSON(w, h.log, http.StatusOK, resp)
}

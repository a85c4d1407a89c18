package scales

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/metrics"
	"github.com/mager/woodshed/scale"
	"github.com/mager/woodshed/util"
	"github.com/mager/woodshed/woodshed"
	"go.uber.org/zap"
)

const (
	prefix       = "/api/scales"
	defaultLimit = 50
)

// RankingCache is satisfied by *cache.RankingCache.
type RankingCache interface {
	Enabled() bool
	Get(ctx context.Context, alpha float64, limit int) ([]byte, bool, error)
	Set(ctx context.Context, alpha float64, limit int, payload []byte) error
}

// RankingHandler ranks every scale type for an alpha.
type RankingHandler struct {
	log     *zap.SugaredLogger
	cfg     config.Config
	cache   RankingCache
	metrics *metrics.Metrics
}

func (*RankingHandler) Pattern() string {
	return prefix + "/ranking"
}

func (*RankingHandler) Method() string {
	return http.MethodGet
}

func NewRankingHandler(log *zap.SugaredLogger, cfg config.Config, cache RankingCache, m *metrics.Metrics) *RankingHandler {
	return &RankingHandler{log: log, cfg: cfg, cache: cache, metrics: m}
}

type RankingResponse struct {
	Alpha          float64                     `json:"alpha"`
	Total          int                         `json:"total"`
	FirstMajorRank int                         `json:"first_major_rank"`
	Cardinalities  []woodshed.CardinalityCount `json:"cardinalities"`
	Scales         []woodshed.RankedScale      `json:"scales"`
}

// Scale ranking
// @Summary Rank scale types by rotated circle-of-fifths magnitude
// @Tags Scales
// @Produce json
// @Param alpha query number false "Rotation bias (default 0.1)"
// @Param limit query int false "Number of scale types, 0 for all (default 50)"
// @Success 200 {object} RankingResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /api/scales/ranking [get]
func (h *RankingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	alpha, err := parseAlpha(q.Get("alpha"), h.cfg.DefaultAlpha)
	if err != nil {
		util.WriteError(w, h.log, http.StatusBadRequest, "alpha must be a number")
		return
	}

	limit := defaultLimit
	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			util.WriteError(w, h.log, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
	}

	ctx := r.Context()
	if h.cache.Enabled() {
		payload, ok, err := h.cache.Get(ctx, alpha, limit)
		switch {
		case err != nil:
			h.log.Errorw("Ranking cache read failed", "alpha", alpha, "limit", limit, "error", err)
			h.metrics.RankingCache.WithLabelValues("error").Inc()
		case ok:
			h.metrics.RankingCache.WithLabelValues("hit").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		default:
			h.metrics.RankingCache.WithLabelValues("miss").Inc()
		}
	}

	ranking := scale.Rank(alpha)
	first, _ := ranking.FirstMajorRank()
	resp := RankingResponse{
		Alpha:          alpha,
		Total:          len(ranking),
		FirstMajorRank: first,
		Cardinalities:  util.GetCardinalityCounts(ranking),
		Scales:         util.RankedScales(ranking.Rows(limit)),
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		h.log.Errorw("Error encoding ranking", "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to encode ranking")
		return
	}

	if h.cache.Enabled() {
		if err := h.cache.Set(ctx, alpha, limit, payload); err != nil {
			h.log.Errorw("Ranking cache write failed", "alpha", alpha, "limit", limit, "error", err)
		}
	}

	h.log.Infow("scale ranking", "alpha", alpha, "limit", limit, "firstMajorRank", first)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// parseAlpha reads an alpha query value, falling back to def when empty.
func parseAlpha(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	alpha, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, strconv.ErrSyntax
	}
	return alpha, nil
}

package strategycards

import (
	"context"
	"net/http"

	"github.com/mager/woodshed/util"
	"github.com/mager/woodshed/woodshed"
	"go.uber.org/zap"
)

// CardStore is satisfied by *database.CardStore.
type CardStore interface {
	Random(ctx context.Context) (*woodshed.StrategyCard, error)
}

// RandomCardHandler draws one card from the deck.
type RandomCardHandler struct {
	log   *zap.SugaredLogger
	cards CardStore
}

func (*RandomCardHandler) Pattern() string {
	return "/api/strategy-cards/random"
}

func (*RandomCardHandler) Method() string {
	return http.MethodGet
}

func NewRandomCardHandler(log *zap.SugaredLogger, cards CardStore) *RandomCardHandler {
	return &RandomCardHandler{log: log, cards: cards}
}

// Random strategy card
// @Summary Draw a strategy card
// @Tags StrategyCards
// @Produce json
// @Success 200 {object} woodshed.StrategyCard
// @Failure 404 {object} util.ErrorResponse
// @Router /api/strategy-cards/random [get]
func (h *RandomCardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	card, err := h.cards.Random(r.Context())
	if err != nil {
		h.log.Errorw("Failed to draw strategy card", "error", err)
		util.WriteError(w, h.log, http.StatusInternalServerError, "Failed to draw card")
		return
	}
	if card == nil {
		util.WriteError(w, h.log, http.StatusNotFound, "No cards available")
		return
	}

	h.log.Infow("strategy card", "id", card.ID)
	util.WriteJSON(w, h.log, http.StatusOK, card)
}

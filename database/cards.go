package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/woodshed"
)

const randomCardQuery = `
	SELECT id, content
	FROM strategy_cards
	ORDER BY random()
	LIMIT 1`

// CardStore draws from the strategy card deck.
type CardStore struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewCardStore(db *sqlx.DB, cfg config.Config) *CardStore {
	return &CardStore{db: db, timeout: cfg.QueryTimeout}
}

// Random returns a random card, or nil when the deck is empty.
func (s *CardStore) Random(ctx context.Context) (*woodshed.StrategyCard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var card woodshed.StrategyCard
	err := s.db.GetContext(ctx, &card, randomCardQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to draw card: %w", err)
	}
	return &card, nil
}

package speedstandards

import (
	"context"

	"github.com/mager/woodshed/woodshed"
)

const prefix = "/api/speed-standards"

// SongStore is satisfied by *database.SongStore.
type SongStore interface {
	List(ctx context.Context) ([]woodshed.Song, error)
	UpdateProgress(ctx context.Context, id int64, achieved, target float64) (bool, error)
	Add(ctx context.Context, title string, achieved, target float64) (int64, error)
}

type SuccessResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/scale"
	"github.com/mager/woodshed/util"
	"github.com/mager/woodshed/woodshed"
)

const rankingsCollection = "scale_rankings"

// RankingDoc is a published ranking snapshot for one alpha.
type RankingDoc struct {
	Alpha          float64                     `json:"alpha" firestore:"alpha"`
	Total          int                         `json:"total" firestore:"total"`
	FirstMajorRank int                         `json:"firstMajorRank" firestore:"firstMajorRank"`
	Cardinalities  []woodshed.CardinalityCount `json:"cardinalities" firestore:"cardinalities"`
	Scales         []woodshed.RankedScale      `json:"scales" firestore:"scales"`
	Updated        string                      `json:"updated" firestore:"updated"`
}

// NewRankingDoc builds the document for the top limit rows of r.
func NewRankingDoc(alpha float64, r scale.Ranking, limit int, now time.Time) RankingDoc {
	first, _ := r.FirstMajorRank()
	return RankingDoc{
		Alpha:          alpha,
		Total:          len(r),
		FirstMajorRank: first,
		Cardinalities:  util.GetCardinalityCounts(r),
		Scales:         util.RankedScales(r.Rows(limit)),
		Updated:        now.Format("2006-01-02"),
	}
}

// DocID is the document key for an alpha. Firestore ids cannot contain "/",
// and dots read badly in the console, so "0.1" becomes "alpha_0_1".
func DocID(alpha float64) string {
	return "alpha_" + strings.NewReplacer(".", "_", "-", "m", "+", "").Replace(scale.FormatAlpha(alpha))
}

// ProvideDB provides a firestore client
func ProvideDB(ctx context.Context, cfg config.Config) (*firestore.Client, error) {
	if cfg.FirestoreProject == "" {
		return nil, fmt.Errorf("firestore project is not configured")
	}
	client, err := firestore.NewClient(ctx, cfg.FirestoreProject)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// PublishRanking overwrites the snapshot for doc.Alpha.
func PublishRanking(ctx context.Context, client *firestore.Client, doc RankingDoc) error {
	_, err := client.Collection(rankingsCollection).Doc(DocID(doc.Alpha)).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to publish ranking %s: %w", DocID(doc.Alpha), err)
	}
	return nil
}

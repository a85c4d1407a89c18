package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRankingDoc(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	doc := NewRankingDoc(0.1, scale.Rank(0.1), 10, now)

	assert.Equal(t, 0.1, doc.Alpha)
	assert.Equal(t, 351, doc.Total)
	assert.Equal(t, 2, doc.FirstMajorRank)
	assert.Equal(t, "2024-03-09", doc.Updated)
	require.Len(t, doc.Scales, 10)
	assert.Equal(t, "1,2,2,1,2,2,2", doc.Scales[1].Pattern)
	assert.True(t, doc.Scales[1].Major)
	require.Len(t, doc.Cardinalities, 12)
	assert.Equal(t, 80, doc.Cardinalities[5].Count)
}

func TestDocID(t *testing.T) {
	assert.Equal(t, "alpha_0_1", DocID(0.1))
	assert.Equal(t, "alpha_1", DocID(1))
	assert.Equal(t, "alpha_m0_5", DocID(-0.5))
}

func TestProvideDBRequiresProject(t *testing.T) {
	_, err := ProvideDB(context.Background(), config.Config{})
	assert.Error(t, err)
}

func TestPublishRanking(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "woodshed-test")
	require.NoError(t, err)
	defer client.Close()

	doc := NewRankingDoc(0.5, scale.Rank(0.5), 5, time.Now())
	require.NoError(t, PublishRanking(ctx, client, doc))

	snap, err := client.Collection(rankingsCollection).Doc("alpha_0_5").Get(ctx)
	require.NoError(t, err)

	var got RankingDoc
	require.NoError(t, snap.DataTo(&got))
	assert.Equal(t, doc, got)
	assert.Equal(t, 1, got.FirstMajorRank)
}

package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/firestore"
	"github.com/mager/woodshed/logger"
	"github.com/mager/woodshed/scale"
	"github.com/spf13/cobra"
)

const defaultAlpha = 0.1

func newRootCmd() *cobra.Command {
	var (
		top     int
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "scaleorder [alpha]",
		Short: "Rank every scale type by rotated circle-of-fifths magnitude",
		Long: `Scores all 4096 pitch-class sets, keeps the best representative of each
interval pattern and prints the top scale types. Alpha biases each note
toward the scale's centroid on the circle of fifths.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha := defaultAlpha
			if len(args) == 1 {
				a, err := parseAlpha(args[0])
				if err != nil {
					return err
				}
				alpha = a
			}
			if top < 1 {
				return fmt.Errorf("invalid --top %d: must be at least 1", top)
			}

			ranking := scale.Rank(alpha)
			if err := scale.WriteReport(cmd.OutOrStdout(), alpha, ranking, top); err != nil {
				return err
			}

			if publish {
				return publishRanking(cmd.Context(), alpha, ranking, top)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 50, "number of scale types to print")
	cmd.Flags().BoolVar(&publish, "publish", false, "write the ranking to Firestore")
	cmd.AddCommand(newSweepCmd())

	return cmd
}

func parseAlpha(s string) (float64, error) {
	alpha, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, fmt.Errorf("invalid alpha value %q: must be a number", s)
	}
	return alpha, nil
}

func publishRanking(ctx context.Context, alpha float64, ranking scale.Ranking, top int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.ProvideLogger(cfg)
	defer log.Sync()

	client, err := firestore.ProvideDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	doc := firestore.NewRankingDoc(alpha, ranking, top, time.Now())
	if err := firestore.PublishRanking(ctx, client, doc); err != nil {
		log.Errorw("Failed to publish ranking", "alpha", alpha, "error", err)
		return err
	}

	log.Infow("Published ranking", "alpha", alpha, "doc", firestore.DocID(alpha), "scales", len(doc.Scales))
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/pong"
)

func main() {
	duration := flag.Duration("duration", 30*time.Second, "Upper bound on the total run time.")
	matches := flag.Int("matches", 100, "Number of matches to play.")
	maxScore := flag.Int("max-score", pong.DefaultMaxScore, "Points needed to win each match.")
	seed := flag.Uint64("seed", 1, "Random seed for the ball and the simulated player.")
	miss := flag.Float64("miss", 40, "How far off the ball the simulated player aims, in pixels.")
	flag.Parse()

	log, err := logger.NewLoggerWithComponent(logger.DefaultConfig(), "pong-soak")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Info("starting soak run",
		logger.F("matches", *matches),
		logger.F("max_score", *maxScore),
		logger.F("seed", *seed),
	)

	report := Soak(ctx, SoakOptions{
		Matches:  *matches,
		MaxScore: *maxScore,
		Seed:     *seed,
		Miss:     *miss,
		Logger:   log,
	})

	fmt.Println("\n--- Pong Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", logger.F("error", err))
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		log.Error("soak run found violations", logger.F("violations", report.Violations))
		os.Exit(1)
	}
}

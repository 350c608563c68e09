package main

import (
	"context"
	_ "embed"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/okian/saw/internal/adapters/problemfile"
	app "github.com/okian/saw/internal/app"
	"github.com/okian/saw/internal/config"
	"github.com/okian/saw/internal/domain/model"
	"github.com/okian/saw/pkg/logger"
	"github.com/okian/saw/pkg/metrics"
)

//go:embed sample_problem.yaml
var sampleProblem []byte

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stderr); err != nil {
		os.Stderr.WriteString("saw: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

// run loads configuration and problems, evaluates them and logs the rankings.
func run(ctx context.Context, out io.Writer) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithWriter(out), logger.WithFormat(cfg.LogFormat)); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}
	log := logger.Get()

	metrics.SetEnabled(cfg.MetricsEnabled)

	problems, err := loadProblems(ctx, cfg.ProblemFile)
	if err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithNormalizeWeights(cfg.NormalizeWeights),
		app.WithWorkerCount(cfg.WorkerCount),
	)
	evals, err := svc.EvaluateBatch(ctx, problems)
	if err != nil {
		return err
	}

	for _, eval := range evals {
		for _, e := range eval.Ranking {
			log.Info(ctx, "ranked alternative",
				logger.String("problem", eval.Problem),
				logger.String("evaluation", eval.ID),
				logger.Int("rank", e.Rank),
				logger.String("alternative", e.Alternative),
				logger.Float64("score", e.Score),
			)
		}
	}

	if cfg.MetricsEnabled && cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Info(ctx, "metrics written", logger.String("path", cfg.MetricsFile))
	}
	return nil
}

// loadProblems reads the comma separated problem files, or the bundled sample
// when none are configured.
func loadProblems(ctx context.Context, files string) ([]model.Problem, error) {
	if strings.TrimSpace(files) == "" {
		p, err := problemfile.Parse(ctx, sampleProblem)
		if err != nil {
			return nil, err
		}
		return []model.Problem{p}, nil
	}
	return problemfile.LoadAll(ctx, strings.Split(files, ","))
}

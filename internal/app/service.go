// Package service evaluates named decision problems on top of the SAW engine
// and reports the outcome through logging and metrics.
package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/saw/internal/domain/model"
	"github.com/okian/saw/internal/domain/types"
	"github.com/okian/saw/pkg/logger"
	"github.com/okian/saw/pkg/metrics"
	"github.com/okian/saw/pkg/saw"
)

// Service evaluates decision problems. It holds no per-problem state and is
// safe for concurrent use.
type Service struct {
	engine *saw.Engine

	// Configuration
	normalizeWeights bool
	workerCount      int
	newID            func() string

	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets how many problems a batch evaluates at once.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithNormalizeWeights controls whether weights are rescaled to sum to 1.
func WithNormalizeWeights(enabled bool) Option {
	return func(s *Service) {
		s.normalizeWeights = enabled
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to metrics.Default().
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithIDGenerator replaces the evaluation id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		normalizeWeights: true,
		workerCount:      runtime.NumCPU(),
		newID:            uuid.NewString,
		metrics:          metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.engine = saw.New(saw.WithNormalizeWeights(s.normalizeWeights))

	return s
}

// Evaluate validates p, runs the SAW method over it and ranks its alternatives.
func (s *Service) Evaluate(ctx context.Context, p model.Problem) (model.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return model.Evaluation{}, err
	}

	start := time.Now()
	eval, err := s.evaluate(p)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	if err != nil {
		s.metrics.RecordEvaluation(metrics.OutcomeError, elapsed)
		s.metrics.RecordError(saw.KindOf(err).String())
		s.logger.Warn(ctx, "problem rejected",
			logger.String("problem", p.Name),
			logger.Error(err),
		)
		return model.Evaluation{}, err
	}

	s.metrics.RecordEvaluation(metrics.OutcomeSuccess, elapsed)
	s.metrics.ObserveProblemSize(len(p.Matrix), len(p.Criteria))

	best, _ := eval.Best()
	s.logger.Debug(ctx, "problem evaluated",
		logger.String("id", eval.ID),
		logger.String("problem", p.Name),
		logger.Int("alternatives", len(eval.Ranks)),
		logger.Float64s("preference", eval.Preference),
		logger.String("best", best.Alternative),
	)

	return eval, nil
}

func (s *Service) evaluate(p model.Problem) (model.Evaluation, error) {
	problem, err := s.engine.NewProblem(p.Matrix, p.CriteriaTypes(), p.Weights())
	if err != nil {
		return model.Evaluation{}, err
	}
	if len(p.Alternatives) != 0 && len(p.Alternatives) != problem.Alternatives() {
		return model.Evaluation{}, &saw.Error{
			Kind:   saw.KindCardinality,
			Row:    -1,
			Column: -1,
			Msg:    fmt.Sprintf("%d alternative names for %d matrix rows", len(p.Alternatives), problem.Alternatives()),
		}
	}

	res := problem.Evaluate()
	return model.Evaluation{
		ID:         s.newID(),
		Problem:    p.Name,
		Weights:    problem.Weights(),
		Normalized: res.Normalized,
		Preference: res.Preference,
		Ranks:      res.Ranks,
		Ranking:    types.Ranking(p.AlternativeNames(), res.Preference, res.Ranks),
	}, nil
}

// EvaluateBatch evaluates problems concurrently and returns the evaluations
// in input order. The first failure cancels the remaining work.
func (s *Service) EvaluateBatch(ctx context.Context, problems []model.Problem) ([]model.Evaluation, error) {
	s.metrics.UpdateBatchSize(len(problems))
	out := make([]model.Evaluation, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)

	for i, p := range problems {
		g.Go(func() error {
			eval, err := s.Evaluate(gctx, p)
			if err != nil {
				return fmt.Errorf("problem %d (%s): %w", i, p.Name, err)
			}
			out[i] = eval
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "batch evaluated",
		logger.Int("problems", len(problems)),
		logger.Int("workers", s.workerCount),
	)
	return out, nil
}

// Package preview computes memoized schedule previews for raw parameter
// sets. Results for the same normalized parameters are computed once and
// shared between callers.
package preview

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/inconshreveable/log15"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/idhash"
	"tokenomics-lab/internal/metrics"
	"tokenomics-lab/internal/normalization"
	"tokenomics-lab/internal/observability"
	"tokenomics-lab/internal/series"
	"tokenomics-lab/internal/simulation"
	"tokenomics-lab/internal/storage"
	"tokenomics-lab/internal/storage/memory"
	"tokenomics-lab/internal/verification"
)

// Service normalizes, simulates, derives and memoizes previews.
// It is safe for concurrent use when its store is.
type Service struct {
	normalizer *normalization.Normalizer
	sim        *simulation.Simulator
	deriver    *series.Deriver
	verifier   *verification.Verifier
	store      storage.PreviewStore
	metrics    *observability.Metrics
	log        log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithStore replaces the default in-memory store.
func WithStore(store storage.PreviewStore) Option {
	return func(s *Service) { s.store = store }
}

// WithMetrics replaces observability.DefaultMetrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the logger. The default is the log15 root logger.
func WithLogger(l log.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a service for cfg.
func NewService(cfg simulation.Config, opts ...Option) *Service {
	cfg = cfg.WithDefaults()
	sim := simulation.NewSimulator(cfg)
	s := &Service{
		normalizer: normalization.NewNormalizer(cfg.Scale),
		sim:        sim,
		deriver:    series.NewDeriver(cfg),
		verifier:   verification.NewVerifier(sim),
		store:      memory.NewPreviewStore(),
		metrics:    observability.DefaultMetrics,
		log:        log.Root(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.New("component", "preview")
	return s
}

// Normalize exposes the service's parameter normalization.
func (s *Service) Normalize(raw domain.RawParameters) domain.TokenomicsParameters {
	return s.normalizer.Normalize(raw)
}

// Preview normalizes raw and returns its preview.
func (s *Service) Preview(ctx context.Context, raw domain.RawParameters) (*domain.Preview, error) {
	return s.PreviewParams(ctx, s.normalizer.Normalize(raw))
}

// PreviewParams returns the memoized preview for p, computing it on a miss.
func (s *Service) PreviewParams(ctx context.Context, p domain.TokenomicsParameters) (*domain.Preview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := idhash.ComputeParamsKey(p)

	cached, err := s.store.GetByKey(ctx, key)
	switch {
	case err == nil:
		s.record(ctx, true)
		s.log.Debug("preview memo hit", "key", key)
		return cached, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("load preview %s: %w", key, err)
	}

	pv := s.compute(key, p)

	err = s.store.Insert(ctx, pv)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrDuplicateKey):
		// A concurrent caller stored the same key first; use theirs.
		if existing, gerr := s.store.GetByKey(ctx, key); gerr == nil {
			pv = existing
		}
	default:
		return nil, fmt.Errorf("store preview %s: %w", key, err)
	}

	s.record(ctx, false)
	return pv, nil
}

func (s *Service) compute(key string, p domain.TokenomicsParameters) *domain.Preview {
	start := time.Now()
	r := s.sim.Run(p)
	sr := s.deriver.Derive(r)
	sum := metrics.Summarize(r, sr)
	s.metrics.RecordSimulation(r, time.Since(start).Seconds())

	logger := s.log.New("key", key)
	logger.Debug("preview computed",
		"outcome", observability.Outcome(r),
		"epochs", len(r.Epochs),
		"final_minted", r.FinalMinted(),
		"duration", time.Since(start))
	if r.CeilingReached {
		logger.Warn("epoch ceiling reached with capacity left",
			"max_epochs", s.sim.Config().MaxEpochs,
			"final_minted", r.FinalMinted(),
			"max_supply", p.PrimaryMaxSupply)
	}

	return &domain.Preview{Key: key, Schedule: r, Series: sr, Summary: sum}
}

// StoredKeys returns the keys of every memoized preview in ascending order.
func (s *Service) StoredKeys(ctx context.Context) ([]string, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored previews: %w", err)
	}
	return keys, nil
}

func (s *Service) record(ctx context.Context, hit bool) {
	n, err := s.store.Len(ctx)
	if err != nil {
		s.log.Warn("count stored previews", "err", err)
	}
	s.metrics.RecordPreview(hit, n)
}

// Verify normalizes raw and checks the simulated schedule against ledger.
func (s *Service) Verify(ctx context.Context, raw domain.RawParameters, ledger domain.ThresholdSchedule) (*verification.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := s.normalizer.Normalize(raw)
	report := s.verifier.Verify(p, ledger)
	s.metrics.RecordVerification(report.Match, len(report.Divergences))

	logger := s.log.New("key", idhash.ComputeParamsKey(p))
	if report.Match {
		logger.Info("ledger parity confirmed", "epochs", report.Epochs)
	} else {
		logger.Error("ledger parity mismatch", "epochs", report.Epochs, "divergences", len(report.Divergences))
		for _, d := range report.Divergences {
			logger.Debug("divergence", "field", d.Field, "ledger", d.Expected, "local", d.Actual)
		}
	}
	return report, nil
}

package model

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"agroadvisor/pkg/dataset"
	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/metrics"
)

// Source tells the registry where a model's dataset lives and how to fit it.
type Source struct {
	Path    string
	Options Options
}

// RunRecorder persists a summary of every successful training.
type RunRecorder interface {
	RecordRun(ctx context.Context, t *Trained, elapsed time.Duration) error
}

type entry struct {
	mu      sync.Mutex
	src     Source
	train   func(*dataset.Frame, Options) (*Trained, error)
	trained *Trained
}

// Registry hands out fitted models, training each one once per dataset
// version and again only when the file on disk changes.
type Registry struct {
	entries  map[Kind]*entry
	recorder RunRecorder
	load     func(string) (*dataset.Frame, error)
}

func NewRegistry(farm, market Source, rec RunRecorder) *Registry {
	return &Registry{
		entries: map[Kind]*entry{
			Farm:   {src: farm, train: TrainFarm},
			Market: {src: market, train: TrainMarket},
		},
		recorder: rec,
		load:     dataset.Load,
	}
}

func (r *Registry) Farm(ctx context.Context) (*Trained, error)   { return r.Get(ctx, Farm) }
func (r *Registry) Market(ctx context.Context) (*Trained, error) { return r.Get(ctx, Market) }

// Path returns the dataset path configured for kind.
func (r *Registry) Path(kind Kind) string {
	if e, ok := r.entries[kind]; ok {
		return e.src.Path
	}
	return ""
}

// Get returns the model for the current dataset version, fitting it if needed.
func (r *Registry) Get(ctx context.Context, kind Kind) (*Trained, error) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("model: unknown model kind %q", kind)
	}
	version, err := Version(e.src.Path)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.trained != nil && e.trained.DatasetVersion == version {
		return e.trained, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := logging.With("registry")
	start := time.Now()
	t, err := r.fit(e, version)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordTraining(string(kind), elapsed, 0, err)
		log.Error().Err(err).Str("model", string(kind)).Str("path", e.src.Path).Msg("training failed")
		return nil, err
	}
	metrics.RecordTraining(string(kind), elapsed, t.Metrics.R2, nil)
	log.Info().
		Str("model", string(kind)).
		Str("id", t.ID.String()).
		Int("rows", t.Rows).
		Float64("mse", t.Metrics.MSE).
		Float64("r2", t.Metrics.R2).
		Dur("elapsed", elapsed).
		Msg("model trained")

	if r.recorder != nil {
		if err := r.recorder.RecordRun(ctx, t, elapsed); err != nil {
			log.Warn().Err(err).Str("model", string(kind)).Msg("could not record training run")
		}
	}
	e.trained = t
	return t, nil
}

func (r *Registry) fit(e *entry, version string) (*Trained, error) {
	f, err := r.load(e.src.Path)
	if err != nil {
		return nil, err
	}
	opts := e.src.Options
	opts.Version = version
	return e.train(f, opts)
}

// Version identifies a dataset revision by path, size and modification time.
func Version(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", &dataset.Error{Path: path, Reason: "stat", Err: err}
	}
	return fmt.Sprintf("%s:%d:%d", path, fi.Size(), fi.ModTime().UnixNano()), nil
}

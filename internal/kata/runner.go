package kata

import (
	"context"
	"log/slog"
	"time"

	"github.com/rail44/kata/internal/log"
)

// Result is one run of one exercise
type Result struct {
	Exercise string   `json:"exercise" yaml:"exercise"`
	Args     []string `json:"args" yaml:"args"`
	Value    any      `json:"value" yaml:"value"`
}

// Runner executes exercises looked up in a registry
type Runner struct {
	registry *Registry
	logger   log.Logger
}

// NewRunner creates a runner over the given registry
func NewRunner(registry *Registry, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		registry: registry,
		logger:   logger,
	}
}

// Registry returns the registry the runner looks exercises up in
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Run executes the named exercise with the given arguments
func (r *Runner) Run(ctx context.Context, name string, args []string) (Result, error) {
	ex, err := r.registry.Get(name)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	r.logger.Debug("running exercise", slog.String("exercise", name), slog.Any("args", args))

	value, err := ex.Execute(ctx, args)
	if err != nil {
		r.logger.Debug("exercise failed", slog.String("exercise", name), slog.String("error", err.Error()))
		return Result{}, err
	}

	r.logger.Debug("exercise complete", slog.String("exercise", name), slog.Duration("took", time.Since(start)))
	return Result{
		Exercise: name,
		Args:     append([]string{}, args...),
		Value:    value,
	}, nil
}

// Package enrich provides a small, generic pipeline abstraction: independent
// enrichment steps run in parallel within a stage, stages run sequentially.
package enrich

import (
	"context"
)

// Step is a single enrichment operation that mutates the given item in place.
// Steps in the same stage may run concurrently against the same item, so they
// must not write to shared fields. A failing step returns an error; the
// pipeline logs it and keeps going.
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that are safe to execute in parallel for a single item.
// The pipeline waits for the whole stage before starting the next one.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}

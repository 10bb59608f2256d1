package enrich

import (
	"context"
	"log"
	"sync"
)

// Pipeline applies a sequence of stages to items. Within a stage every step
// runs in its own goroutine; a stage barrier separates stages. Step errors are
// logged and do not abort the remaining stages, so one failing enrichment
// never loses the item.
//
// Pipeline is generic over the item type T and is stateless: Apply may be
// called from many goroutines at once for different items.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// NewPipeline constructs a Pipeline from the provided stages, applied in
// order.
func NewPipeline[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// Apply runs every stage against a single item. Steps observe the context for
// cancellation.
func (p *Pipeline[T]) Apply(ctx context.Context, item *T) {
	for _, stage := range p.stages {
		var wg sync.WaitGroup
		for _, step := range stage.steps {
			wg.Add(1)
			go func(step Step[T]) {
				defer wg.Done()
				if err := step(ctx, item); err != nil {
					log.Printf("Enrichment step failed: %v", err)
				}
			}(step)
		}
		wg.Wait() // stage barrier
	}
}

// Process consumes items from the input channel and applies all stages to
// each, in channel order. It returns when the input channel is closed.
func (p *Pipeline[T]) Process(ctx context.Context, in <-chan *T) {
	for item := range in {
		p.Apply(ctx, item)
	}
}

// Package workerpool runs a bounded number of goroutines over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

// Each calls process for every item using at most workers goroutines.
// The first error cancels the shared context; items not yet started are dropped
// and that error is returned. With one worker, items run in slice order.
func Each[T any](ctx context.Context, workers int, items []T, process func(context.Context, T) error) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) && len(items) > 0 {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	tasks := make(chan T)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

package ratings

import (
	"context"
	"sync"
	"sync/atomic"
)

// MapWithLimit applies worker to every item with at most limit calls in
// flight.  The result slice is positionally aligned with items no matter in
// which order workers finish.  Workers share an atomic cursor, so every
// index is claimed exactly once and limits below the item count simply mean
// fewer goroutines draining the same sequence.
//
// The first worker error aborts the batch: remaining workers stop claiming
// indices and the error is returned with a nil slice.  Callers that need
// partial results to survive individual failures must make worker itself
// non-failing.
func MapWithLimit[T, R any](ctx context.Context, items []T, limit int, worker func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if limit < 1 {
		limit = 1
	}
	if limit > len(items) {
		limit = len(items)
	}

	var (
		cursor atomic.Int64
		wg     sync.WaitGroup
		mu     sync.Mutex
		runErr error
	)
	n := int64(len(items))

	for w := 0; w < limit; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := cursor.Add(1) - 1
				if i >= n {
					return
				}
				mu.Lock()
				stop := runErr != nil
				mu.Unlock()
				if stop {
					return
				}
				r, err := worker(ctx, items[i])
				if err != nil {
					mu.Lock()
					if runErr == nil {
						runErr = err
					}
					mu.Unlock()
					return
				}
				out[i] = r
			}
		}()
	}
	wg.Wait()

	if runErr != nil {
		return nil, runErr
	}
	return out, nil
}

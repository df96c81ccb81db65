package corpus

import (
	"context"
	"sync"

	"github.com/wiseai/quote-engine/internal/domain"
)

const defaultLabelConcurrency = 4

// labelAll assigns an emotion to every quote in place using a worker pool.
// Quote text is unioned with its tags for matching, so a pre-tagged quote
// classifies by its tag vocabulary even when the body has no keyword.
func labelAll(ctx context.Context, quotes []domain.Quote, labeler Labeler, concurrency int) error {
	if concurrency <= 0 {
		concurrency = defaultLabelConcurrency
	}
	if concurrency > len(quotes) {
		concurrency = len(quotes)
	}
	if len(quotes) == 0 {
		return nil
	}

	jobs := make(chan int, len(quotes))
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				quotes[i].Emotion = labeler.Classify(quotes[i].Text, quotes[i].Tags)
			}
		}()
	}

	for i := range quotes {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

package screening

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/screening-engine/internal/types"
)

// Application is one applicant's submission set within a batch.
type Application struct {
	ID          uuid.UUID
	Submissions []types.AnswerSubmission
}

// defaultBatchConcurrency bounds the worker count when the caller passes zero.
const defaultBatchConcurrency = 8

// ProcessBatch screens many independent applications against one form
// snapshot concurrently. The engine is side-effect-free and the form is never
// mutated, so the applications can be evaluated in parallel; results are
// returned in input order. The only error is context cancellation.
func ProcessBatch(ctx context.Context, form *types.Form, apps []Application, concurrency int) ([]types.ScreeningResult, error) {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]types.ScreeningResult, len(apps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range apps {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Process(form, apps[i].Submissions)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RawApplication is one applicant's submission set within a batch, as raw JSON.
type RawApplication struct {
	ID          uuid.UUID
	Submissions []types.RawSubmission
}

// ProcessRawBatch is ProcessBatch for applications arriving as raw JSON
// answers; each application goes through the same decode path as ProcessRaw.
func ProcessRawBatch(ctx context.Context, form *types.Form, apps []RawApplication, concurrency int) ([]types.ScreeningResult, error) {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]types.ScreeningResult, len(apps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range apps {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ProcessRaw(form, apps[i].Submissions)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package projections

import (
	"context"

	"octofit/internal/adapters/apiclient"
	"octofit/internal/domain/resource"
	"octofit/internal/observability"
)

// State is the outcome of a list fetch once loading has finished.
type State string

const (
	StateLoaded State = "loaded"
	StateEmpty  State = "empty"
	StateFailed State = "failed"
)

// ListView binds a resource to the renderer for its rows or cards.
type ListView[T any] struct {
	Resource resource.Resource
	Render   func(index int, r resource.Record) T
}

// ListResult carries one rendered list in exactly one state.
type ListResult[T any] struct {
	Resource resource.Resource
	State    State
	Items    []T    // set only when State is StateLoaded
	Error    string // set only when State is StateFailed
}

// Count returns the number of rendered items.
func (r ListResult[T]) Count() int {
	return len(r.Items)
}

// ListResourceDeps holds dependencies for QueryListResource.
type ListResourceDeps struct {
	Fetcher CollectionFetcher
}

// QueryListResource fetches the view's collection once and renders every record.
// PRE: view.Render is non-nil; deps.Fetcher is non-nil
// POST: exactly one upstream fetch was attempted
// INVARIANT: a failed fetch never yields items, and its message is the same for every cause
func QueryListResource[T any](ctx context.Context, view ListView[T], deps ListResourceDeps) ListResult[T] {
	result := ListResult[T]{Resource: view.Resource}

	records, err := deps.Fetcher.List(ctx, view.Resource)
	if err != nil {
		result.State = StateFailed
		result.Error = apiclient.FailureMessage
		return result
	}

	if len(records) == 0 {
		result.State = StateEmpty
		return result
	}

	items := make([]T, len(records))
	for i, rec := range records {
		if rec == nil {
			rec = resource.Record{}
		}
		items[i] = view.Render(i, rec)
	}
	observability.RecordRendered(view.Resource.Name, len(items))

	result.State = StateLoaded
	result.Items = items
	return result
}

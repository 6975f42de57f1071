package projections

import (
	"context"

	"octofit/internal/domain/resource"
)

// CollectionFetcher loads every record of one resource from the upstream API.
// Implementations return a non-nil slice on success.
type CollectionFetcher interface {
	List(ctx context.Context, res resource.Resource) ([]resource.Record, error)
}

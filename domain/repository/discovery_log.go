package repository

import (
	"context"

	"axlas-recipes/domain/model"
)

// IDiscoveryLog records video discovery runs for later inspection.
// Writes are best-effort; callers log failures and move on.
type IDiscoveryLog interface {
	RecordRun(ctx context.Context, run *model.DiscoveryRun) error
	RecentRuns(ctx context.Context, limit int) ([]model.DiscoveryRun, error)
}

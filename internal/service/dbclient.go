package service

import (
	"context"

	"duckgate/backend/internal/model"
)

// QueryEngine resolves the active data source and runs caller SQL against it.
type QueryEngine interface {
	Resolve() (model.Source, error)
	Execute(ctx context.Context, src model.Source, query string) (model.ResultSet, error)
}

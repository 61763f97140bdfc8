package dao

import (
	"context"
)

type JobDAO interface {
	SearchJob(ctx context.Context, offset, limit int, keywords string) ([]Job, error)
}

type AnyDAO interface {
	Input(ctx context.Context, index string, docID string, data string) error
}

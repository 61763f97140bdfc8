package repository

import (
	"context"

	"github.com/ecodeclub/hirehub/internal/search/internal/domain"
)

type JobRepo interface {
	SearchJob(ctx context.Context, offset, limit int, keywords string) ([]domain.Job, error)
}

type AnyRepo interface {
	Input(ctx context.Context, index string, docID string, data string) error
}

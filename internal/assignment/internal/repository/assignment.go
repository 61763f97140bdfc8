// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/domain"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/repository/dao"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a domain.Assignment) (int64, error)
	Delete(ctx context.Context, jobId, reviewerUid int64) error
	Find(ctx context.Context, jobId, reviewerUid int64) (domain.Assignment, error)
	ListByReviewer(ctx context.Context, reviewerUid int64) ([]domain.Assignment, error)
	ListByJob(ctx context.Context, jobId int64) ([]domain.Assignment, error)
}

type assignmentRepository struct {
	dao dao.AssignmentDAO
}

func NewAssignmentRepository(d dao.AssignmentDAO) AssignmentRepository {
	return &assignmentRepository{dao: d}
}

func (repo *assignmentRepository) Create(ctx context.Context, a domain.Assignment) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(a))
}

func (repo *assignmentRepository) Delete(ctx context.Context, jobId, reviewerUid int64) error {
	return repo.dao.Delete(ctx, jobId, reviewerUid)
}

func (repo *assignmentRepository) Find(ctx context.Context, jobId, reviewerUid int64) (domain.Assignment, error) {
	a, err := repo.dao.Find(ctx, jobId, reviewerUid)
	if err != nil {
		return domain.Assignment{}, err
	}
	return repo.toDomain(a), nil
}

func (repo *assignmentRepository) ListByReviewer(ctx context.Context, reviewerUid int64) ([]domain.Assignment, error) {
	res, err := repo.dao.ListByReviewer(ctx, reviewerUid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Assignment) domain.Assignment {
		return repo.toDomain(src)
	}), nil
}

func (repo *assignmentRepository) ListByJob(ctx context.Context, jobId int64) ([]domain.Assignment, error) {
	res, err := repo.dao.ListByJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Assignment) domain.Assignment {
		return repo.toDomain(src)
	}), nil
}

func (repo *assignmentRepository) toEntity(a domain.Assignment) dao.Assignment {
	return dao.Assignment{
		Id:          a.ID,
		JobId:       a.JobID,
		ReviewerUid: a.ReviewerUid,
	}
}

func (repo *assignmentRepository) toDomain(a dao.Assignment) domain.Assignment {
	return domain.Assignment{
		ID:          a.Id,
		JobID:       a.JobId,
		ReviewerUid: a.ReviewerUid,
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}

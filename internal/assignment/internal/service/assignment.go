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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/hirehub/internal/assignment/internal/domain"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/repository"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/repository/dao"
)

//go:generate mockgen -source=./assignment.go -destination=../../mocks/assignment.mock.go -package=assignmentmocks -typed AssignmentService
type AssignmentService interface {
	Assign(ctx context.Context, jobId, reviewerUid int64) (int64, error)
	Revoke(ctx context.Context, jobId, reviewerUid int64) error
	// IsAssigned 判定 uid 是否被指派为 jobId 的审核员
	IsAssigned(ctx context.Context, uid, jobId int64) (bool, error)
	ListByReviewer(ctx context.Context, reviewerUid int64) ([]domain.Assignment, error)
	ListByJob(ctx context.Context, jobId int64) ([]domain.Assignment, error)
}

type assignmentService struct {
	repo repository.AssignmentRepository
}

func NewAssignmentService(repo repository.AssignmentRepository) AssignmentService {
	return &assignmentService{repo: repo}
}

func (s *assignmentService) Assign(ctx context.Context, jobId, reviewerUid int64) (int64, error) {
	return s.repo.Create(ctx, domain.Assignment{
		JobID:       jobId,
		ReviewerUid: reviewerUid,
	})
}

func (s *assignmentService) Revoke(ctx context.Context, jobId, reviewerUid int64) error {
	return s.repo.Delete(ctx, jobId, reviewerUid)
}

func (s *assignmentService) IsAssigned(ctx context.Context, uid, jobId int64) (bool, error) {
	_, err := s.repo.Find(ctx, jobId, uid)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *assignmentService) ListByReviewer(ctx context.Context, reviewerUid int64) ([]domain.Assignment, error) {
	return s.repo.ListByReviewer(ctx, reviewerUid)
}

func (s *assignmentService) ListByJob(ctx context.Context, jobId int64) ([]domain.Assignment, error) {
	return s.repo.ListByJob(ctx, jobId)
}

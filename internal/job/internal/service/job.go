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

	"github.com/ecodeclub/hirehub/internal/job/internal/domain"
	"github.com/ecodeclub/hirehub/internal/job/internal/event"
	"github.com/ecodeclub/hirehub/internal/job/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed JobService
type JobService interface {
	Save(ctx context.Context, j domain.Job) (int64, error)
	Publish(ctx context.Context, id int64) error
	Close(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (domain.Job, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Job, error)
	PubList(ctx context.Context, offset, limit int) (int64, []domain.Job, error)
	ListByCompany(ctx context.Context, companyId int64, offset, limit int) (int64, []domain.Job, error)
}

type jobService struct {
	repo     repository.JobRepository
	producer event.JobPublishedEventProducer
	logger   *elog.Component
}

func NewJobService(repo repository.JobRepository, producer event.JobPublishedEventProducer) JobService {
	return &jobService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *jobService) Save(ctx context.Context, j domain.Job) (int64, error) {
	if j.ID == 0 {
		j.Status = domain.UnpublishedStatus
	}
	return s.repo.Save(ctx, j)
}

func (s *jobService) Publish(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, id, domain.PublishedStatus)
}

func (s *jobService) Close(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, id, domain.ClosedStatus)
}

func (s *jobService) updateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	j, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	// 同步搜索侧失败不影响主链路
	evt := event.JobPublishedEvent{
		ID:        j.ID,
		CompanyID: j.CompanyID,
		Title:     j.Title,
		Desc:      j.Desc,
		Location:  j.Location,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Status:    j.Status.ToUint8(),
		Utime:     j.Utime,
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送岗位变更消息失败",
			elog.Int64("jobId", id),
			elog.FieldErr(err))
	}
	return nil
}

func (s *jobService) GetById(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *jobService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Job, error) {
	jobs, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Job, len(jobs))
	for _, j := range jobs {
		res[j.ID] = j
	}
	return res, nil
}

func (s *jobService) PubList(ctx context.Context, offset, limit int) (int64, []domain.Job, error) {
	var (
		eg    errgroup.Group
		total int64
		jobs  []domain.Job
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.PubList(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.PubCount(ctx)
		return err
	})
	err := eg.Wait()
	return total, jobs, err
}

func (s *jobService) ListByCompany(ctx context.Context, companyId int64, offset, limit int) (int64, []domain.Job, error) {
	var (
		eg    errgroup.Group
		total int64
		jobs  []domain.Job
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListByCompany(ctx, companyId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByCompany(ctx, companyId)
		return err
	})
	err := eg.Wait()
	return total, jobs, err
}

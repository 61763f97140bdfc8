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
	"github.com/ecodeclub/hirehub/internal/job/internal/domain"
	"github.com/ecodeclub/hirehub/internal/job/internal/repository/dao"
)

type JobRepository interface {
	Save(ctx context.Context, j domain.Job) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error
	FindById(ctx context.Context, id int64) (domain.Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error)
	PubList(ctx context.Context, offset, limit int) ([]domain.Job, error)
	PubCount(ctx context.Context) (int64, error)
	ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]domain.Job, error)
	CountByCompany(ctx context.Context, companyId int64) (int64, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(dao dao.JobDAO) JobRepository {
	return &jobRepository{dao: dao}
}

func (r *jobRepository) Save(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(j))
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(j), nil
}

func (r *jobRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error) {
	jobs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) PubList(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.PubList(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) PubCount(ctx context.Context) (int64, error) {
	return r.dao.PubCount(ctx)
}

func (r *jobRepository) ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListByCompany(ctx, companyId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) CountByCompany(ctx context.Context, companyId int64) (int64, error) {
	return r.dao.CountByCompany(ctx, companyId)
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:        j.ID,
		CompanyId: j.CompanyID,
		Title:     j.Title,
		Desc:      j.Desc,
		Location:  j.Location,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Status:    j.Status.ToUint8(),
	}
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:        j.Id,
		CompanyID: j.CompanyId,
		Title:     j.Title,
		Desc:      j.Desc,
		Location:  j.Location,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Status:    domain.JobStatus(j.Status),
		Ctime:     j.Ctime,
		Utime:     j.Utime,
	}
}

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
	"github.com/ecodeclub/hirehub/internal/search/internal/domain"
	"github.com/ecodeclub/hirehub/internal/search/internal/repository/dao"
)

type jobRepo struct {
	dao dao.JobDAO
}

func NewJobRepo(d dao.JobDAO) JobRepo {
	return &jobRepo{dao: d}
}

func (repo *jobRepo) SearchJob(ctx context.Context, offset, limit int, keywords string) ([]domain.Job, error) {
	res, err := repo.dao.SearchJob(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Job) domain.Job {
		return domain.Job{
			ID:        src.Id,
			CompanyID: src.CompanyId,
			Title:     src.Title,
			Desc:      src.Desc,
			Location:  src.Location,
			SalaryMin: src.SalaryMin,
			SalaryMax: src.SalaryMax,
			Status:    src.Status,
			Utime:     src.Utime,
		}
	}), nil
}

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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/company/internal/domain"
	"github.com/ecodeclub/hirehub/internal/company/internal/repository"
	"github.com/ecodeclub/hirehub/internal/company/internal/repository/dao"
)

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks -typed CompanyService
type CompanyService interface {
	Save(ctx context.Context, company domain.Company) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Company, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error)

	AddMember(ctx context.Context, m domain.Member) (int64, error)
	RemoveMember(ctx context.Context, companyId, uid int64) error
	// IsAdmin uid 是否有权代表 companyId 行事（Owner 或 Admin 都算）
	IsAdmin(ctx context.Context, uid, companyId int64) (bool, error)
	// AdminUids 管理团队全部账号，通知企业侧的时候用
	AdminUids(ctx context.Context, companyId int64) ([]int64, error)
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) Save(ctx context.Context, company domain.Company) (int64, error) {
	return s.repo.Save(ctx, company)
}

func (s *companyService) GetById(ctx context.Context, id int64) (domain.Company, error) {
	return s.repo.FindById(ctx, id)
}

func (s *companyService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error) {
	companies, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Company)
	for _, company := range companies {
		res[company.ID] = company
	}
	return res, nil
}

func (s *companyService) List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error) {
	companies, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (s *companyService) AddMember(ctx context.Context, m domain.Member) (int64, error) {
	return s.repo.AddMember(ctx, m)
}

func (s *companyService) RemoveMember(ctx context.Context, companyId, uid int64) error {
	return s.repo.RemoveMember(ctx, companyId, uid)
}

func (s *companyService) IsAdmin(ctx context.Context, uid, companyId int64) (bool, error) {
	_, err := s.repo.FindMember(ctx, companyId, uid)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *companyService) AdminUids(ctx context.Context, companyId int64) ([]int64, error) {
	ms, err := s.repo.FindMembers(ctx, companyId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src domain.Member) int64 {
		return src.Uid
	}), nil
}

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
	"github.com/ecodeclub/hirehub/internal/company/internal/domain"
	"github.com/ecodeclub/hirehub/internal/company/internal/repository/dao"
)

type CompanyRepository interface {
	Save(ctx context.Context, c domain.Company) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Company, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, error)
	Count(ctx context.Context) (int64, error)

	AddMember(ctx context.Context, m domain.Member) (int64, error)
	RemoveMember(ctx context.Context, companyId, uid int64) error
	FindMember(ctx context.Context, companyId, uid int64) (domain.Member, error)
	FindMembers(ctx context.Context, companyId int64) ([]domain.Member, error)
}

type companyRepository struct {
	dao dao.CompanyDAO
}

func NewCompanyRepository(dao dao.CompanyDAO) CompanyRepository {
	return &companyRepository{
		dao: dao,
	}
}

func (r *companyRepository) Save(ctx context.Context, c domain.Company) (int64, error) {
	return r.dao.Save(ctx, r.domainToEntity(c))
}

func (r *companyRepository) FindById(ctx context.Context, id int64) (domain.Company, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Company{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *companyRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Company, error) {
	entities, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Company) domain.Company {
		return r.entityToDomain(src)
	}), nil
}

func (r *companyRepository) List(ctx context.Context, offset int, limit int) ([]domain.Company, error) {
	entities, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Company) domain.Company {
		return r.entityToDomain(src)
	}), nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *companyRepository) AddMember(ctx context.Context, m domain.Member) (int64, error) {
	return r.dao.AddMember(ctx, dao.Member{
		CompanyId: m.CompanyID,
		Uid:       m.Uid,
		Role:      m.Role.ToUint8(),
	})
}

func (r *companyRepository) RemoveMember(ctx context.Context, companyId, uid int64) error {
	return r.dao.RemoveMember(ctx, companyId, uid)
}

func (r *companyRepository) FindMember(ctx context.Context, companyId, uid int64) (domain.Member, error) {
	m, err := r.dao.FindMember(ctx, companyId, uid)
	if err != nil {
		return domain.Member{}, err
	}
	return r.memberToDomain(m), nil
}

func (r *companyRepository) FindMembers(ctx context.Context, companyId int64) ([]domain.Member, error) {
	ms, err := r.dao.FindMembers(ctx, companyId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.Member) domain.Member {
		return r.memberToDomain(src)
	}), nil
}

func (r *companyRepository) memberToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:        m.Id,
		CompanyID: m.CompanyId,
		Uid:       m.Uid,
		Role:      domain.MemberRole(m.Role),
		Ctime:     m.Ctime,
	}
}

func (r *companyRepository) domainToEntity(c domain.Company) dao.Company {
	return dao.Company{
		Id:       c.ID,
		Name:     c.Name,
		Intro:    c.Intro,
		Website:  c.Website,
		Location: c.Location,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}

func (r *companyRepository) entityToDomain(c dao.Company) domain.Company {
	return domain.Company{
		ID:       c.Id,
		Name:     c.Name,
		Intro:    c.Intro,
		Website:  c.Website,
		Location: c.Location,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}

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

	"github.com/ecodeclub/hirehub/internal/profile/internal/domain"
	"github.com/ecodeclub/hirehub/internal/profile/internal/repository/dao"
)

type ProfileRepository interface {
	Save(ctx context.Context, p domain.Profile) (int64, error)
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
	FindById(ctx context.Context, id int64) (domain.Profile, error)
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(dao dao.ProfileDAO) ProfileRepository {
	return &profileRepository{dao: dao}
}

func (r *profileRepository) Save(ctx context.Context, p domain.Profile) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(p))
}

func (r *profileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(p), nil
}

func (r *profileRepository) FindById(ctx context.Context, id int64) (domain.Profile, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(p), nil
}

func (r *profileRepository) toEntity(p domain.Profile) dao.Profile {
	return dao.Profile{
		Id:        p.ID,
		Uid:       p.Uid,
		Name:      p.Name,
		Title:     p.Title,
		Phone:     p.Phone,
		Email:     p.Email,
		Summary:   p.Summary,
		ResumeURL: p.ResumeURL,
	}
}

func (r *profileRepository) toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		ID:        p.Id,
		Uid:       p.Uid,
		Name:      p.Name,
		Title:     p.Title,
		Phone:     p.Phone,
		Email:     p.Email,
		Summary:   p.Summary,
		ResumeURL: p.ResumeURL,
		Ctime:     p.Ctime,
		Utime:     p.Utime,
	}
}

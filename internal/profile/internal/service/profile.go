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

	"github.com/ecodeclub/hirehub/internal/profile/internal/domain"
	"github.com/ecodeclub/hirehub/internal/profile/internal/repository"
	"github.com/ecodeclub/hirehub/internal/profile/internal/repository/dao"
)

//go:generate mockgen -source=./profile.go -destination=../../mocks/profile.mock.go -package=profilemocks -typed ProfileService
type ProfileService interface {
	Save(ctx context.Context, p domain.Profile) (int64, error)
	GetByUid(ctx context.Context, uid int64) (domain.Profile, error)
	GetById(ctx context.Context, id int64) (domain.Profile, error)
	// Completed 没有档案等同于档案不完整
	Completed(ctx context.Context, uid int64) (domain.Profile, bool, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Save(ctx context.Context, p domain.Profile) (int64, error) {
	return s.repo.Save(ctx, p)
}

func (s *profileService) GetByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *profileService) GetById(ctx context.Context, id int64) (domain.Profile, error) {
	return s.repo.FindById(ctx, id)
}

func (s *profileService) Completed(ctx context.Context, uid int64) (domain.Profile, bool, error) {
	p, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Profile{}, false, nil
		}
		return domain.Profile{}, false, err
	}
	return p, p.Complete(), nil
}

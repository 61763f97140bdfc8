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

	"github.com/ecodeclub/hirehub/internal/search/internal/domain"
	"github.com/ecodeclub/hirehub/internal/search/internal/repository"
)

//go:generate mockgen -source=./search.go -destination=../../mocks/search.mock.go -package=searchmocks -typed SearchService
type SearchService interface {
	SearchJob(ctx context.Context, offset, limit int, keywords string) ([]domain.Job, error)
}

type searchService struct {
	jobRepo repository.JobRepo
}

func NewSearchService(jobRepo repository.JobRepo) SearchService {
	return &searchService{jobRepo: jobRepo}
}

func (s *searchService) SearchJob(ctx context.Context, offset, limit int, keywords string) ([]domain.Job, error) {
	return s.jobRepo.SearchJob(ctx, offset, limit, keywords)
}

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

	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./notification.go -destination=../../mocks/notification.mock.go -package=notificationmocks -typed NotificationService
type NotificationService interface {
	Send(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) error
	UnreadCount(ctx context.Context, uid int64) (int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
	gen  *snowflake.Generator
}

func NewNotificationService(repo repository.NotificationRepository, gen *snowflake.Generator) NotificationService {
	return &notificationService{
		repo: repo,
		gen:  gen,
	}
}

func (s *notificationService) Send(ctx context.Context, n domain.Notification) (int64, error) {
	n.ID = s.gen.NextID()
	n.Status = domain.UnreadStatus
	return s.repo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		eg    errgroup.Group
		res   []domain.Notification
		total int64
	)
	eg.Go(func() error {
		var err error
		res, err = s.repo.ListByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	return res, total, eg.Wait()
}

func (s *notificationService) MarkRead(ctx context.Context, uid int64, ids []int64) error {
	return s.repo.MarkRead(ctx, uid, ids)
}

func (s *notificationService) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

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
	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository/dao"
)

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) error
	UnreadCount(ctx context.Context, uid int64) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (repo *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(n))
}

func (repo *notificationRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	res, err := repo.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Notification) domain.Notification {
		return repo.toDomain(src)
	}), nil
}

func (repo *notificationRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.CountByUid(ctx, uid)
}

func (repo *notificationRepository) MarkRead(ctx context.Context, uid int64, ids []int64) error {
	return repo.dao.MarkRead(ctx, uid, ids)
}

func (repo *notificationRepository) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.UnreadCount(ctx, uid)
}

func (repo *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		Id:      n.ID,
		Uid:     n.Uid,
		Biz:     n.Biz,
		BizId:   n.BizID,
		Title:   n.Title,
		Content: n.Content,
		Status:  n.Status.ToUint8(),
	}
}

func (repo *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:      n.Id,
		Uid:     n.Uid,
		Biz:     n.Biz,
		BizID:   n.BizId,
		Title:   n.Title,
		Content: n.Content,
		Status:  domain.NotificationStatus(n.Status),
		Ctime:   n.Ctime,
		Utime:   n.Utime,
	}
}

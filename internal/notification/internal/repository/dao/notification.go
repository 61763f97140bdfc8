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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type NotificationDAO interface {
	Create(ctx context.Context, n Notification) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) error
	UnreadCount(ctx context.Context, uid int64) (int64, error)
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (g *GORMNotificationDAO) Create(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := g.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (g *GORMNotificationDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMNotificationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ?", uid).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMNotificationDAO) MarkRead(ctx context.Context, uid int64, ids []int64) error {
	return g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND id IN ?", uid, ids).
		Updates(map[string]any{
			"status": 1,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMNotificationDAO) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND status = ?", uid, 0).
		Count(&cnt).Error
	return cnt, err
}

// Notification 主键使用雪花算法生成，不依赖自增
type Notification struct {
	Id      int64  `gorm:"primaryKey"`
	Uid     int64  `gorm:"index"`
	Biz     string `gorm:"type:varchar(64)"`
	BizId   int64
	Title   string `gorm:"type:varchar(256)"`
	Content string
	Status  uint8 `gorm:"type:tinyint unsigned;default:0"`
	Ctime   int64
	Utime   int64
}

func (Notification) TableName() string {
	return "notifications"
}

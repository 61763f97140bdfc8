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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateApplication 同一个候选人重复投同一个岗位
	ErrDuplicateApplication = errors.New("重复投递")
	// ErrConcurrentModification 乐观锁冲突，别人先改了状态
	ErrConcurrentModification = errors.New("投递记录已被并发修改")
	ErrRecordNotFound         = gorm.ErrRecordNotFound
)

type ApplicationDAO interface {
	// Create 同一个事务里落主记录和第一条流水
	Create(ctx context.Context, app Application, his ApplicationHistory) (int64, error)
	GetById(ctx context.Context, id int64) (Application, error)
	// UpdateStatus 带版本号的条件更新，加一条流水，同一个事务。
	// 版本不匹配返回 ErrConcurrentModification，调用方自己决定要不要重试。
	UpdateStatus(ctx context.Context, id, version int64, status uint8, his ApplicationHistory) error
	ListByJob(ctx context.Context, jobId int64, statuses []uint8, offset, limit int) ([]Application, error)
	CountByJob(ctx context.Context, jobId int64, statuses []uint8) (int64, error)
	ListByUid(ctx context.Context, uid int64) ([]Application, error)
	HistoryOf(ctx context.Context, applicationId int64) ([]ApplicationHistory, error)
}

type applicationDAO struct {
	db *egorm.Component
}

func NewApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &applicationDAO{db: db}
}

func (a *applicationDAO) Create(ctx context.Context, app Application, his ApplicationHistory) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	app.Version = 1
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		his.ApplicationId = app.Id
		his.Ctime = now
		return tx.Create(&his).Error
	})
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicateApplication
			}
		}
		return 0, err
	}
	return app.Id, nil
}

func (a *applicationDAO) GetById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := a.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (a *applicationDAO) UpdateStatus(ctx context.Context, id, version int64, status uint8, his ApplicationHistory) error {
	now := time.Now().UnixMilli()
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Application{}).
			Where("id = ? AND version = ?", id, version).
			Updates(map[string]any{
				"status":  status,
				"version": version + 1,
				"utime":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 版本号对不上，要么记录不存在，要么被并发改掉了
			return ErrConcurrentModification
		}
		his.ApplicationId = id
		his.Status = status
		his.Ctime = now
		return tx.Create(&his).Error
	})
}

func (a *applicationDAO) ListByJob(ctx context.Context, jobId int64, statuses []uint8, offset, limit int) ([]Application, error) {
	var apps []Application
	err := a.jobQuery(ctx, jobId, statuses).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (a *applicationDAO) CountByJob(ctx context.Context, jobId int64, statuses []uint8) (int64, error) {
	var count int64
	err := a.jobQuery(ctx, jobId, statuses).Count(&count).Error
	return count, err
}

func (a *applicationDAO) jobQuery(ctx context.Context, jobId int64, statuses []uint8) *gorm.DB {
	query := a.db.WithContext(ctx).Model(&Application{}).Where("job_id = ?", jobId)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	return query
}

func (a *applicationDAO) ListByUid(ctx context.Context, uid int64) ([]Application, error) {
	var apps []Application
	err := a.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&apps).Error
	return apps, err
}

func (a *applicationDAO) HistoryOf(ctx context.Context, applicationId int64) ([]ApplicationHistory, error) {
	var entries []ApplicationHistory
	err := a.db.WithContext(ctx).
		Where("application_id = ?", applicationId).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

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

	"github.com/ecodeclub/hirehub/internal/job/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	Save(ctx context.Context, j Job) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	FindById(ctx context.Context, id int64) (Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]Job, error)
	// PubList 只返回已发布的岗位
	PubList(ctx context.Context, offset, limit int) ([]Job, error)
	PubCount(ctx context.Context) (int64, error)
	ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]Job, error)
	CountByCompany(ctx context.Context, companyId int64) (int64, error)
}

type jobDAO struct {
	db *egorm.Component
}

func NewJobDAO(db *egorm.Component) JobDAO {
	return &jobDAO{db: db}
}

func (d *jobDAO) Save(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "desc", "location", "salary_min", "salary_max", "utime",
		}),
	}).Create(&j).Error
	return j.Id, err
}

func (d *jobDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *jobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (d *jobDAO) FindByIds(ctx context.Context, ids []int64) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) PubList(ctx context.Context, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.PublishedStatus.ToUint8()).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) PubCount(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).
		Where("status = ?", domain.PublishedStatus.ToUint8()).
		Count(&count).Error
	return count, err
}

func (d *jobDAO) ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) CountByCompany(ctx context.Context, companyId int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).
		Where("company_id = ?", companyId).
		Count(&count).Error
	return count, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Job{})
}

type Job struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	CompanyId int64  `gorm:"index"`
	Title     string `gorm:"type:varchar(256);not null"`
	Desc      string `gorm:"column:desc;type:text"`
	Location  string `gorm:"type:varchar(256)"`
	SalaryMin int64
	SalaryMax int64
	Status    uint8 `gorm:"index"`
	Ctime     int64
	Utime     int64
}

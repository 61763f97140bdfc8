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
	ErrDuplicateAssignment = errors.New("重复分配审核员")
	ErrRecordNotFound      = gorm.ErrRecordNotFound
)

type AssignmentDAO interface {
	Create(ctx context.Context, a Assignment) (int64, error)
	Delete(ctx context.Context, jobId, reviewerUid int64) error
	Find(ctx context.Context, jobId, reviewerUid int64) (Assignment, error)
	ListByReviewer(ctx context.Context, reviewerUid int64) ([]Assignment, error)
	ListByJob(ctx context.Context, jobId int64) ([]Assignment, error)
}

type GORMAssignmentDAO struct {
	db *egorm.Component
}

func NewGORMAssignmentDAO(db *egorm.Component) AssignmentDAO {
	return &GORMAssignmentDAO{db: db}
}

func (g *GORMAssignmentDAO) Create(ctx context.Context, a Assignment) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := g.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicateAssignment
			}
		}
		return 0, err
	}
	return a.Id, nil
}

func (g *GORMAssignmentDAO) Delete(ctx context.Context, jobId, reviewerUid int64) error {
	return g.db.WithContext(ctx).
		Where("job_id = ? AND reviewer_uid = ?", jobId, reviewerUid).
		Delete(&Assignment{}).Error
}

func (g *GORMAssignmentDAO) Find(ctx context.Context, jobId, reviewerUid int64) (Assignment, error) {
	var a Assignment
	err := g.db.WithContext(ctx).
		Where("job_id = ? AND reviewer_uid = ?", jobId, reviewerUid).
		First(&a).Error
	return a, err
}

func (g *GORMAssignmentDAO) ListByReviewer(ctx context.Context, reviewerUid int64) ([]Assignment, error) {
	var res []Assignment
	err := g.db.WithContext(ctx).
		Where("reviewer_uid = ?", reviewerUid).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMAssignmentDAO) ListByJob(ctx context.Context, jobId int64) ([]Assignment, error) {
	var res []Assignment
	err := g.db.WithContext(ctx).
		Where("job_id = ?", jobId).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

// Assignment 同一个岗位同一个审核员只能有一条记录
type Assignment struct {
	Id          int64 `gorm:"primaryKey,autoIncrement"`
	JobId       int64 `gorm:"uniqueIndex:uniq_job_reviewer"`
	ReviewerUid int64 `gorm:"uniqueIndex:uniq_job_reviewer;index"`
	Ctime       int64
	Utime       int64
}

func (Assignment) TableName() string {
	return "review_assignments"
}

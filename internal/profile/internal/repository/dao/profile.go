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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProfileDAO interface {
	// Save 一个账号只有一份档案，存在就更新
	Save(ctx context.Context, p Profile) (int64, error)
	FindByUid(ctx context.Context, uid int64) (Profile, error)
	FindById(ctx context.Context, id int64) (Profile, error)
}

type profileDAO struct {
	db *egorm.Component
}

func NewProfileDAO(db *egorm.Component) ProfileDAO {
	return &profileDAO{db: db}
}

func (d *profileDAO) Save(ctx context.Context, p Profile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "title", "phone", "email", "summary", "resume_url", "utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *profileDAO) FindByUid(ctx context.Context, uid int64) (Profile, error) {
	var p Profile
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&p).Error
	return p, err
}

func (d *profileDAO) FindById(ctx context.Context, id int64) (Profile, error) {
	var p Profile
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Profile{})
}

type Profile struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Uid       int64  `gorm:"uniqueIndex:uniq_profile_uid"`
	Name      string `gorm:"type:varchar(128)"`
	Title     string `gorm:"type:varchar(256)"`
	Phone     string `gorm:"type:varchar(32)"`
	Email     string `gorm:"type:varchar(256)"`
	Summary   string `gorm:"type:text"`
	ResumeURL string `gorm:"type:varchar(512)"`
	Ctime     int64
	Utime     int64
}

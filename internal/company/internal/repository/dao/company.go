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
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateMember 同一个人重复加入同一家公司
	ErrDuplicateMember = errors.New("已经是公司成员")
)

type CompanyDAO interface {
	Save(ctx context.Context, c Company) (int64, error)
	FindById(ctx context.Context, id int64) (Company, error)
	FindByIds(ctx context.Context, ids []int64) ([]Company, error)
	List(ctx context.Context, offset int, limit int) ([]Company, error)
	Count(ctx context.Context) (int64, error)

	AddMember(ctx context.Context, m Member) (int64, error)
	RemoveMember(ctx context.Context, companyId, uid int64) error
	FindMember(ctx context.Context, companyId, uid int64) (Member, error)
	FindMembers(ctx context.Context, companyId int64) ([]Member, error)
}

type GORMCompanyDAO struct {
	db *egorm.Component
}

func NewGORMCompanyDAO(db *egorm.Component) CompanyDAO {
	return &GORMCompanyDAO{
		db: db,
	}
}

func (c *GORMCompanyDAO) Save(ctx context.Context, company Company) (int64, error) {
	now := time.Now().UnixMilli()
	company.Utime = now
	company.Ctime = now
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "intro", "website", "location", "utime"}),
	}).Create(&company).Error
	return company.Id, err
}

func (c *GORMCompanyDAO) FindById(ctx context.Context, id int64) (Company, error) {
	var company Company
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	return company, err
}

func (c *GORMCompanyDAO) FindByIds(ctx context.Context, ids []int64) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error
	return companies, err
}

func (c *GORMCompanyDAO) List(ctx context.Context, offset int, limit int) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&companies).Error
	return companies, err
}

func (c *GORMCompanyDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Company{}).Count(&count).Error
	return count, err
}

func (c *GORMCompanyDAO) AddMember(ctx context.Context, m Member) (int64, error) {
	m.Ctime = time.Now().UnixMilli()
	err := c.db.WithContext(ctx).Create(&m).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicateMember
			}
		}
		return 0, err
	}
	return m.Id, nil
}

func (c *GORMCompanyDAO) RemoveMember(ctx context.Context, companyId, uid int64) error {
	return c.db.WithContext(ctx).
		Where("company_id = ? AND uid = ?", companyId, uid).
		Delete(&Member{}).Error
}

func (c *GORMCompanyDAO) FindMember(ctx context.Context, companyId, uid int64) (Member, error) {
	var m Member
	err := c.db.WithContext(ctx).
		Where("company_id = ? AND uid = ?", companyId, uid).
		First(&m).Error
	return m, err
}

func (c *GORMCompanyDAO) FindMembers(ctx context.Context, companyId int64) ([]Member, error) {
	var ms []Member
	err := c.db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Order("id ASC").
		Find(&ms).Error
	return ms, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Company{}, &Member{})
}

type Company struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(256);not null"`
	Intro    string `gorm:"type:varchar(2048)"`
	Website  string `gorm:"type:varchar(256)"`
	Location string `gorm:"type:varchar(256)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

type Member struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	CompanyId int64 `gorm:"uniqueIndex:uniq_company_member"`
	Uid       int64 `gorm:"uniqueIndex:uniq_company_member"`
	Role      uint8
	Ctime     int64
}

func (Member) TableName() string {
	return "company_members"
}

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

// Application 投递主记录。
// (candidate_id, job_id) 上的唯一索引是"一人一岗最多投一次"的最终防线，
// 并发创建靠它兜底，不靠应用层的先查后插。
type Application struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	SN          string `gorm:"column:sn;type:varchar(64);uniqueIndex:uniq_application_sn"`
	JobId       int64  `gorm:"uniqueIndex:uniq_candidate_job"`
	CandidateId int64  `gorm:"uniqueIndex:uniq_candidate_job"`
	// Uid 候选人账号 ID，列表查询走这个索引
	Uid       int64 `gorm:"index"`
	Status    uint8
	ResumeURL string `gorm:"type:varchar(512)"`
	// Version 乐观锁，每次状态流转 +1
	Version int64
	Ctime   int64
	Utime   int64
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationHistory 状态流水，只插入，永不更新或删除
type ApplicationHistory struct {
	Id            int64 `gorm:"primaryKey,autoIncrement"`
	ApplicationId int64 `gorm:"index"`
	Status        uint8
	ActorId       int64
	Note          string `gorm:"type:varchar(512)"`
	Ctime         int64
}

func (ApplicationHistory) TableName() string {
	return "application_histories"
}

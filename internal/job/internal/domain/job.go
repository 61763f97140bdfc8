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

package domain

type Job struct {
	ID        int64
	CompanyID int64
	Title     string
	// Desc 岗位职责和要求
	Desc     string
	Location string
	// SalaryMin SalaryMax 月薪区间，单位元
	SalaryMin int64
	SalaryMax int64
	Status    JobStatus
	Ctime     int64
	Utime     int64
}

type JobStatus uint8

func (s JobStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// UnknownJobStatus 未知
	UnknownJobStatus JobStatus = 0
	// UnpublishedStatus 草稿，候选人看不到
	UnpublishedStatus JobStatus = 1
	// PublishedStatus 已发布，可以投递
	PublishedStatus JobStatus = 2
	// ClosedStatus 已关闭，不再接受投递
	ClosedStatus JobStatus = 3
)

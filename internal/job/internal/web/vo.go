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

package web

import (
	"github.com/ecodeclub/hirehub/internal/job/internal/domain"
)

type SaveJobReq struct {
	Job Job `json:"job"`
}

type Job struct {
	ID        int64  `json:"id,omitempty"`
	CompanyID int64  `json:"company_id,omitempty"`
	// CompanyName 列表页冗余给前端
	CompanyName string `json:"company_name,omitempty"`
	Title       string `json:"title,omitempty"`
	Desc        string `json:"desc,omitempty"`
	Location    string `json:"location,omitempty"`
	SalaryMin   int64  `json:"salary_min,omitempty"`
	SalaryMax   int64  `json:"salary_max,omitempty"`
	Status      uint8  `json:"status,omitempty"`
	Utime       int64  `json:"utime,omitempty"`
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:        j.ID,
		CompanyID: j.CompanyID,
		Title:     j.Title,
		Desc:      j.Desc,
		Location:  j.Location,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Status:    domain.JobStatus(j.Status),
	}
}

func newJob(j domain.Job) Job {
	return Job{
		ID:        j.ID,
		CompanyID: j.CompanyID,
		Title:     j.Title,
		Desc:      j.Desc,
		Location:  j.Location,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Status:    j.Status.ToUint8(),
		Utime:     j.Utime,
	}
}

type JobListResp struct {
	Total int64 `json:"total"`
	List  []Job `json:"list"`
}

type DetailReq struct {
	ID int64 `json:"id,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type CompanyJobsReq struct {
	CompanyID int64 `json:"company_id,omitempty"`
	Offset    int   `json:"offset,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

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

import "github.com/ecodeclub/hirehub/internal/search/internal/domain"

type SearchReq struct {
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Keywords string `json:"keywords"`
}

type JobResult struct {
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	Id        int64  `json:"id"`
	CompanyId int64  `json:"companyId"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Location  string `json:"location"`
	SalaryMin int64  `json:"salaryMin"`
	SalaryMax int64  `json:"salaryMax"`
	Utime     int64  `json:"utime"`
}

func newJob(j domain.Job) Job {
	return Job{
		Id:        j.ID,
		CompanyId: j.CompanyID,
		Title:     j.Title,
		Desc:      j.Desc,
		Location:  j.Location,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Utime:     j.Utime,
	}
}

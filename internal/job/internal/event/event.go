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

package event

const JobPublishedEventName = "job_published_events"

// JobPublishedEvent 岗位发布或关闭之后同步给搜索侧
type JobPublishedEvent struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Location  string `json:"location"`
	SalaryMin int64  `json:"salary_min"`
	SalaryMax int64  `json:"salary_max"`
	Status    uint8  `json:"status"`
	Utime     int64  `json:"utime"`
}

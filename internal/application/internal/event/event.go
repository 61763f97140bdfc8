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

const ApplicationStatusEventName = "application_status_events"

// ApplicationStatusEvent 投递状态变更事件。
// 岗位和公司名在生产侧冗余好，下游不用回查
type ApplicationStatusEvent struct {
	ApplicationID  int64  `json:"applicationId"`
	SN             string `json:"sn"`
	Uid            int64  `json:"uid"`
	JobID          int64  `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	Status         string `json:"status"`
	PrevStatus     string `json:"prevStatus"`
	CandidateLabel string `json:"candidateLabel"`
	// EmployerUids 本次变更需要通知的企业侧账号。
	// 只有新投递和顾问推送这两种变更才通知企业，其余时候为空
	EmployerUids  []int64 `json:"employerUids,omitempty"`
	EmployerLabel string  `json:"employerLabel,omitempty"`
}

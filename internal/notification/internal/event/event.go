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

// ApplicationStatusEvent 投递状态变更事件，
// 生产方已经把岗位和公司名冗余进来，消费方不用再回查
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
	// EmployerUids 需要通知的企业侧账号，生产方按变更类型算好
	EmployerUids  []int64 `json:"employerUids,omitempty"`
	EmployerLabel string  `json:"employerLabel,omitempty"`
}

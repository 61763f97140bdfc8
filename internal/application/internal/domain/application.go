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

// Application 一次投递：一个候选人投一个岗位
type Application struct {
	ID int64
	// SN 流水号，对外展示用
	SN    string
	JobID int64
	// CandidateID 候选人简历档案 ID
	CandidateID int64
	// Uid 候选人登录账号 ID，鉴权用，和简历档案 ID 不是一回事
	Uid    int64
	Status ApplicationStatus
	// ResumeURL 投递那一刻的简历快照，后面改简历不影响已投递的记录
	ResumeURL string
	// History 只增不减的状态流水
	History []HistoryEntry
	Version int64
	Ctime   int64
	Utime   int64
}

// HistoryEntry 一条状态变更流水
type HistoryEntry struct {
	Status  ApplicationStatus
	ActorID int64
	Note    string
	Ctime   int64
}

type ApplicationStatus uint8

func (s ApplicationStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// UnknownStatus 未知
	UnknownStatus ApplicationStatus = 0
	// AppliedStatus 候选人刚投递
	AppliedStatus ApplicationStatus = 1
	// PendingHRStatus 已进入初筛队列
	PendingHRStatus ApplicationStatus = 2
	// HRRejectedStatus 初筛淘汰，终态
	HRRejectedStatus ApplicationStatus = 3
	// ForwardedStatus 初筛通过，已推给企业
	ForwardedStatus ApplicationStatus = 4
	// CompanyViewedStatus 企业已查看
	CompanyViewedStatus ApplicationStatus = 5
	// CompanyAcceptedStatus 企业接受，进入面试，终态
	CompanyAcceptedStatus ApplicationStatus = 6
	// CompanyRejectedStatus 企业拒绝，终态
	CompanyRejectedStatus ApplicationStatus = 7
)

func (s ApplicationStatus) String() string {
	switch s {
	case AppliedStatus:
		return "applied"
	case PendingHRStatus:
		return "pending_hr"
	case HRRejectedStatus:
		return "hr_rejected"
	case ForwardedStatus:
		return "forwarded_to_company"
	case CompanyViewedStatus:
		return "company_viewed"
	case CompanyAcceptedStatus:
		return "company_accepted"
	case CompanyRejectedStatus:
		return "company_rejected"
	default:
		return "unknown"
	}
}

// IsTerminal 终态不允许再流转
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case HRRejectedStatus, CompanyAcceptedStatus, CompanyRejectedStatus:
		return true
	default:
		return false
	}
}

type ActorRole uint8

const (
	RoleUnknown ActorRole = 0
	// RoleCandidate 候选人，投递之后不再驱动任何流转
	RoleCandidate ActorRole = 1
	// RoleReviewer 初筛顾问，负责把投递推给企业或者直接淘汰
	RoleReviewer ActorRole = 2
	// RoleEmployer 企业方，只处理已推送过来的投递
	RoleEmployer ActorRole = 3
)

func (r ActorRole) String() string {
	switch r {
	case RoleCandidate:
		return "candidate"
	case RoleReviewer:
		return "reviewer"
	case RoleEmployer:
		return "employer"
	default:
		return "unknown"
	}
}

// Actor 发起操作的人
type Actor struct {
	Uid  int64
	Role ActorRole
}

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

// 内部状态不直接暴露给任何角色，各角色只能看到自己的投影。
// 候选人永远不知道"初筛"这一层的存在。

const (
	CandidateLabelApplied     = "Applied"
	CandidateLabelUnderReview = "Under Review"
	CandidateLabelShortlisted = "Shortlisted"
	CandidateLabelInterview   = "Interview"
	CandidateLabelNotSelected = "Not Selected"

	EmployerLabelActionRequired = "Action Required"
	EmployerLabelShortlisted    = "Shortlisted"
	EmployerLabelRejected       = "Rejected"
)

// CandidateView 候选人视角的状态标签
func (s ApplicationStatus) CandidateView() string {
	switch s {
	case AppliedStatus:
		return CandidateLabelApplied
	case PendingHRStatus:
		return CandidateLabelUnderReview
	case HRRejectedStatus, CompanyRejectedStatus:
		return CandidateLabelNotSelected
	case ForwardedStatus, CompanyViewedStatus:
		return CandidateLabelShortlisted
	case CompanyAcceptedStatus:
		return CandidateLabelInterview
	default:
		return CandidateLabelApplied
	}
}

// EmployerView 企业视角的状态标签。
// 初筛阶段的状态企业根本看不到记录本身，这里兜底返回空串。
func (s ApplicationStatus) EmployerView() string {
	switch s {
	case ForwardedStatus, CompanyViewedStatus:
		return EmployerLabelActionRequired
	case CompanyAcceptedStatus:
		return EmployerLabelShortlisted
	case CompanyRejectedStatus:
		return EmployerLabelRejected
	default:
		return ""
	}
}

// EmployerVisibleStatuses 企业默认列表能看到的状态。
// 没被顾问推过来的投递（applied/pending_hr/hr_rejected）默认一概不给看。
func EmployerVisibleStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ForwardedStatus,
		CompanyViewedStatus,
		CompanyAcceptedStatus,
		CompanyRejectedStatus,
	}
}

// HiddenFromEmployer status 是否属于企业默认不可见的内部状态
func HiddenFromEmployer(s ApplicationStatus) bool {
	switch s {
	case AppliedStatus, PendingHRStatus, HRRejectedStatus:
		return true
	default:
		return false
	}
}

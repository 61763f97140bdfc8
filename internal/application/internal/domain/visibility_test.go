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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_CandidateView(t *testing.T) {
	testCases := []struct {
		name   string
		status ApplicationStatus
		want   string
	}{
		{
			name:   "刚投递",
			status: AppliedStatus,
			want:   CandidateLabelApplied,
		},
		{
			name:   "初筛中",
			status: PendingHRStatus,
			want:   CandidateLabelUnderReview,
		},
		// 候选人不知道初筛淘汰和企业拒绝的区别
		{
			name:   "初筛淘汰",
			status: HRRejectedStatus,
			want:   CandidateLabelNotSelected,
		},
		{
			name:   "企业拒绝",
			status: CompanyRejectedStatus,
			want:   CandidateLabelNotSelected,
		},
		// 推送和已查看对候选人也是一回事
		{
			name:   "已推给企业",
			status: ForwardedStatus,
			want:   CandidateLabelShortlisted,
		},
		{
			name:   "企业已查看",
			status: CompanyViewedStatus,
			want:   CandidateLabelShortlisted,
		},
		{
			name:   "企业接受",
			status: CompanyAcceptedStatus,
			want:   CandidateLabelInterview,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.CandidateView())
		})
	}
}

func TestApplicationStatus_EmployerView(t *testing.T) {
	testCases := []struct {
		name   string
		status ApplicationStatus
		want   string
	}{
		{
			name:   "已推送待处理",
			status: ForwardedStatus,
			want:   EmployerLabelActionRequired,
		},
		{
			name:   "已查看仍然待处理",
			status: CompanyViewedStatus,
			want:   EmployerLabelActionRequired,
		},
		{
			name:   "已接受",
			status: CompanyAcceptedStatus,
			want:   EmployerLabelShortlisted,
		},
		{
			name:   "已拒绝",
			status: CompanyRejectedStatus,
			want:   EmployerLabelRejected,
		},
		// 初筛阶段企业连记录都看不到，投影为空
		{
			name:   "刚投递没有企业投影",
			status: AppliedStatus,
			want:   "",
		},
		{
			name:   "初筛中没有企业投影",
			status: PendingHRStatus,
			want:   "",
		},
		{
			name:   "初筛淘汰没有企业投影",
			status: HRRejectedStatus,
			want:   "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.EmployerView())
		})
	}
}

func TestEmployerVisibility(t *testing.T) {
	visible := EmployerVisibleStatuses()
	assert.Equal(t, []ApplicationStatus{
		ForwardedStatus,
		CompanyViewedStatus,
		CompanyAcceptedStatus,
		CompanyRejectedStatus,
	}, visible)
	// 可见集合和隐藏判定必须互补
	for _, st := range visible {
		assert.False(t, HiddenFromEmployer(st), st.String())
	}
	hidden := []ApplicationStatus{AppliedStatus, PendingHRStatus, HRRejectedStatus}
	for _, st := range hidden {
		assert.True(t, HiddenFromEmployer(st), st.String())
	}
}

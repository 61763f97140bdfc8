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

func TestCanTransit(t *testing.T) {
	testCases := []struct {
		name    string
		current ApplicationStatus
		target  ApplicationStatus
		role    ActorRole
		want    bool
	}{
		// --- 审核员的合法流转 ---
		{
			name:    "审核员-刚投递推给企业",
			current: AppliedStatus,
			target:  ForwardedStatus,
			role:    RoleReviewer,
			want:    true,
		},
		{
			name:    "审核员-刚投递直接淘汰",
			current: AppliedStatus,
			target:  HRRejectedStatus,
			role:    RoleReviewer,
			want:    true,
		},
		{
			name:    "审核员-初筛队列推给企业",
			current: PendingHRStatus,
			target:  ForwardedStatus,
			role:    RoleReviewer,
			want:    true,
		},
		{
			name:    "审核员-初筛队列淘汰",
			current: PendingHRStatus,
			target:  HRRejectedStatus,
			role:    RoleReviewer,
			want:    true,
		},
		// --- 企业方的合法流转 ---
		{
			name:    "企业-已推送标记查看",
			current: ForwardedStatus,
			target:  CompanyViewedStatus,
			role:    RoleEmployer,
			want:    true,
		},
		{
			name:    "企业-没点开直接接受",
			current: ForwardedStatus,
			target:  CompanyAcceptedStatus,
			role:    RoleEmployer,
			want:    true,
		},
		{
			name:    "企业-没点开直接拒绝",
			current: ForwardedStatus,
			target:  CompanyRejectedStatus,
			role:    RoleEmployer,
			want:    true,
		},
		{
			name:    "企业-看过之后接受",
			current: CompanyViewedStatus,
			target:  CompanyAcceptedStatus,
			role:    RoleEmployer,
			want:    true,
		},
		{
			name:    "企业-看过之后拒绝",
			current: CompanyViewedStatus,
			target:  CompanyRejectedStatus,
			role:    RoleEmployer,
			want:    true,
		},
		// --- 越权：角色不对 ---
		{
			name:    "候选人驱动不了任何流转",
			current: AppliedStatus,
			target:  ForwardedStatus,
			role:    RoleCandidate,
			want:    false,
		},
		{
			name:    "审核员碰不了已推送的投递",
			current: ForwardedStatus,
			target:  CompanyAcceptedStatus,
			role:    RoleReviewer,
			want:    false,
		},
		{
			name:    "企业碰不了初筛阶段的投递",
			current: AppliedStatus,
			target:  CompanyRejectedStatus,
			role:    RoleEmployer,
			want:    false,
		},
		// --- 非法路径 ---
		{
			name:    "不能跳过企业直接接受",
			current: AppliedStatus,
			target:  CompanyAcceptedStatus,
			role:    RoleReviewer,
			want:    false,
		},
		{
			name:    "不能往回退",
			current: ForwardedStatus,
			target:  AppliedStatus,
			role:    RoleEmployer,
			want:    false,
		},
		{
			name:    "企业不能把投递退回初筛",
			current: CompanyViewedStatus,
			target:  PendingHRStatus,
			role:    RoleEmployer,
			want:    false,
		},
		// --- 终态之后全部拒绝 ---
		{
			name:    "初筛淘汰之后不能复活",
			current: HRRejectedStatus,
			target:  ForwardedStatus,
			role:    RoleReviewer,
			want:    false,
		},
		{
			name:    "企业接受之后不能反悔",
			current: CompanyAcceptedStatus,
			target:  CompanyRejectedStatus,
			role:    RoleEmployer,
			want:    false,
		},
		{
			name:    "企业拒绝之后不能反悔",
			current: CompanyRejectedStatus,
			target:  CompanyAcceptedStatus,
			role:    RoleEmployer,
			want:    false,
		},
		// --- 未知输入 ---
		{
			name:    "未知角色",
			current: AppliedStatus,
			target:  ForwardedStatus,
			role:    RoleUnknown,
			want:    false,
		},
		{
			name:    "未知状态",
			current: UnknownStatus,
			target:  ForwardedStatus,
			role:    RoleReviewer,
			want:    false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransit(tc.current, tc.target, tc.role))
		})
	}
}

func TestApplicationStatus_IsTerminal(t *testing.T) {
	terminal := []ApplicationStatus{
		HRRejectedStatus, CompanyAcceptedStatus, CompanyRejectedStatus,
	}
	for _, st := range terminal {
		assert.True(t, st.IsTerminal(), st.String())
	}
	active := []ApplicationStatus{
		UnknownStatus, AppliedStatus, PendingHRStatus,
		ForwardedStatus, CompanyViewedStatus,
	}
	for _, st := range active {
		assert.False(t, st.IsTerminal(), st.String())
	}
}

func TestApplicationStatus_String(t *testing.T) {
	testCases := []struct {
		status ApplicationStatus
		want   string
	}{
		{status: AppliedStatus, want: "applied"},
		{status: PendingHRStatus, want: "pending_hr"},
		{status: HRRejectedStatus, want: "hr_rejected"},
		{status: ForwardedStatus, want: "forwarded_to_company"},
		{status: CompanyViewedStatus, want: "company_viewed"},
		{status: CompanyAcceptedStatus, want: "company_accepted"},
		{status: CompanyRejectedStatus, want: "company_rejected"},
		{status: UnknownStatus, want: "unknown"},
		{status: ApplicationStatus(88), want: "unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.String())
		})
	}
}

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

type transitionKey struct {
	current ApplicationStatus
	role    ActorRole
}

// transitions 状态机全量表。不在表里的流转一律拒绝。
// 候选人没有任何表项：投递之后整条流水线都不归他驱动。
var transitions = map[transitionKey][]ApplicationStatus{
	// 初筛顾问：通过或者淘汰
	{current: AppliedStatus, role: RoleReviewer}:   {ForwardedStatus, HRRejectedStatus},
	{current: PendingHRStatus, role: RoleReviewer}: {ForwardedStatus, HRRejectedStatus},
	// 企业方：查看之后接受或者拒绝，也允许不经过"已查看"直接给结论
	{current: ForwardedStatus, role: RoleEmployer}:     {CompanyViewedStatus, CompanyAcceptedStatus, CompanyRejectedStatus},
	{current: CompanyViewedStatus, role: RoleEmployer}: {CompanyAcceptedStatus, CompanyRejectedStatus},
}

// CanTransit current 状态下 role 是否允许流转到 target。
// current == target 的场景由调用方按幂等处理，不走这张表。
func CanTransit(current, target ApplicationStatus, role ActorRole) bool {
	allowed, ok := transitions[transitionKey{current: current, role: role}]
	if !ok {
		return false
	}
	for _, st := range allowed {
		if st == target {
			return true
		}
	}
	return false
}

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

type Company struct {
	ID   int64
	Name string
	// Intro 公司简介
	Intro    string
	Website  string
	Location string
	Ctime    int64
	Utime    int64
}

// Member 公司管理团队成员，Owner 和 Admin 都能代表公司处理投递
type Member struct {
	ID        int64
	CompanyID int64
	Uid       int64
	Role      MemberRole
	Ctime     int64
}

type MemberRole uint8

const (
	RoleUnknown MemberRole = 0
	// RoleOwner 建公司的人，唯一
	RoleOwner MemberRole = 1
	RoleAdmin MemberRole = 2
)

func (r MemberRole) ToUint8() uint8 {
	return uint8(r)
}

func (r MemberRole) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

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

func TestMemberRole(t *testing.T) {
	testCases := []struct {
		name     string
		role     MemberRole
		wantVal  uint8
		wantName string
	}{
		{
			name:     "创始人",
			role:     RoleOwner,
			wantVal:  1,
			wantName: "owner",
		},
		{
			name:     "管理员",
			role:     RoleAdmin,
			wantVal:  2,
			wantName: "admin",
		},
		{
			name:     "未知角色",
			role:     RoleUnknown,
			wantVal:  0,
			wantName: "unknown",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantVal, tc.role.ToUint8())
			assert.Equal(t, tc.wantName, tc.role.String())
		})
	}
}

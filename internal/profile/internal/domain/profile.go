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

type Profile struct {
	ID  int64
	Uid int64
	// Name 真实姓名
	Name  string
	Title string
	Phone string
	Email string
	// Summary 个人简介
	Summary string
	// ResumeURL 当前简历文件地址，投递时会被快照
	ResumeURL string
	Ctime     int64
	Utime     int64
}

// Complete 投递的硬性门槛：姓名、联系方式、简历缺一不可
func (p Profile) Complete() bool {
	if p.Name == "" || p.ResumeURL == "" {
		return false
	}
	return p.Phone != "" || p.Email != ""
}

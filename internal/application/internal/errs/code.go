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

package errs

var (
	SystemError = ErrorCode{Code: 521001, Msg: "系统错误"}
	// 下面这些都是确定性的业务错误，客户端重试也没用
	ApplicationNotFoundError  = ErrorCode{Code: 421001, Msg: "投递记录不存在"}
	ProfileIncompleteError    = ErrorCode{Code: 421002, Msg: "请先完善候选人档案"}
	DuplicateApplicationError = ErrorCode{Code: 421003, Msg: "请勿重复投递同一岗位"}
	UnauthorizedError         = ErrorCode{Code: 421004, Msg: "无权操作该投递"}
	InvalidTransitionError    = ErrorCode{Code: 421005, Msg: "非法的状态流转"}
	JobNotOpenError           = ErrorCode{Code: 421006, Msg: "岗位未开放投递"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

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

package web

import "github.com/ecodeclub/hirehub/internal/assignment/internal/domain"

type AssignReq struct {
	JobID       int64 `json:"jobId"`
	ReviewerUid int64 `json:"reviewerUid"`
}

type ListReq struct {
	JobID       int64 `json:"jobId"`
	ReviewerUid int64 `json:"reviewerUid"`
}

type Assignment struct {
	Id          int64 `json:"id"`
	JobID       int64 `json:"jobId"`
	ReviewerUid int64 `json:"reviewerUid"`
	Ctime       int64 `json:"ctime"`
}

func newAssignment(a domain.Assignment) Assignment {
	return Assignment{
		Id:          a.ID,
		JobID:       a.JobID,
		ReviewerUid: a.ReviewerUid,
		Ctime:       a.Ctime,
	}
}

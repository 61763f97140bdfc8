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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
)

type ApplyReq struct {
	JobID int64 `json:"jobId"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type TransitionReq struct {
	ID int64 `json:"id"`
	// Status 目标状态，取 domain.ApplicationStatus 的取值
	Status uint8  `json:"status"`
	Note   string `json:"note,omitempty"`
}

type ListForJobReq struct {
	JobID int64 `json:"jobId"`
	// Statuses 为空时服务端按角色给默认投影
	Statuses []uint8 `json:"statuses,omitempty"`
	Offset   int     `json:"offset,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

// CandidateApplication 候选人视角：只暴露粗粒度进度，
// 不暴露初筛细节
type CandidateApplication struct {
	Id          int64  `json:"id"`
	SN          string `json:"sn"`
	JobId       int64  `json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Status      string `json:"status"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

type CandidateApplicationDetail struct {
	CandidateApplication
	ResumeURL string                  `json:"resumeUrl"`
	History   []CandidateHistoryEntry `json:"history"`
}

type CandidateHistoryEntry struct {
	Status string `json:"status"`
	Ctime  int64  `json:"ctime"`
}

// StaffApplication 审核员和企业侧共用的投递视图，
// status 字段按各自的投影填
type StaffApplication struct {
	Id          int64  `json:"id"`
	SN          string `json:"sn"`
	JobId       int64  `json:"jobId"`
	CandidateId int64  `json:"candidateId"`
	Status      string `json:"status"`
	ResumeURL   string `json:"resumeUrl"`
	Note        string `json:"note,omitempty"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

type StaffApplicationList struct {
	Total        int64              `json:"total,omitempty"`
	Applications []StaffApplication `json:"applications,omitempty"`
}

type CandidateApplicationList struct {
	Applications []CandidateApplication `json:"applications,omitempty"`
}

func newCandidateApplication(app domain.Application, jobTitle, companyName string) CandidateApplication {
	return CandidateApplication{
		Id:          app.ID,
		SN:          app.SN,
		JobId:       app.JobID,
		JobTitle:    jobTitle,
		CompanyName: companyName,
		Status:      app.Status.CandidateView(),
		Ctime:       app.Ctime,
		Utime:       app.Utime,
	}
}

func newCandidateDetail(app domain.Application, jobTitle, companyName string) CandidateApplicationDetail {
	return CandidateApplicationDetail{
		CandidateApplication: newCandidateApplication(app, jobTitle, companyName),
		ResumeURL:            app.ResumeURL,
		History: slice.Map(app.History, func(idx int, src domain.HistoryEntry) CandidateHistoryEntry {
			return CandidateHistoryEntry{
				Status: src.Status.CandidateView(),
				Ctime:  src.Ctime,
			}
		}),
	}
}

func newReviewerApplication(app domain.Application) StaffApplication {
	return StaffApplication{
		Id:          app.ID,
		SN:          app.SN,
		JobId:       app.JobID,
		CandidateId: app.CandidateID,
		// 审核员看真实状态
		Status:    app.Status.String(),
		ResumeURL: app.ResumeURL,
		Ctime:     app.Ctime,
		Utime:     app.Utime,
	}
}

func newEmployerApplication(app domain.Application) StaffApplication {
	return StaffApplication{
		Id:          app.ID,
		SN:          app.SN,
		JobId:       app.JobID,
		CandidateId: app.CandidateID,
		Status:      app.Status.EmployerView(),
		ResumeURL:   app.ResumeURL,
		Ctime:       app.Ctime,
		Utime:       app.Utime,
	}
}

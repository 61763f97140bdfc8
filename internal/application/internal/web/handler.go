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
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/application/internal/service"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/gin-gonic/gin"
)

// Handler 候选人侧接口
type Handler struct {
	svc        service.ApplicationService
	jobSvc     job.Service
	companySvc company.Service
}

func NewHandler(svc service.ApplicationService,
	jobSvc job.Service,
	companySvc company.Service) *Handler {
	return &Handler{
		svc:        svc,
		jobSvc:     jobSvc,
		companySvc: companySvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/apply", ginx.BS(h.Apply))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS(h.Detail))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Apply(ctx, sess.Claims().Uid, req.JobID)
	switch {
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	case errors.Is(err, service.ErrProfileIncomplete):
		return profileIncompleteResult, nil
	case errors.Is(err, service.ErrDuplicateApplication):
		return duplicateApplicationResult, nil
	case errors.Is(err, service.ErrJobNotOpen):
		return jobNotOpenResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.ListForCandidate(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	jobs, companies, err := h.relatedOf(ctx, apps)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CandidateApplicationList{
			Applications: slice.Map(apps, func(idx int, src domain.Application) CandidateApplication {
				j := jobs[src.JobID]
				return newCandidateApplication(src, j.Title, companies[j.CompanyID].Name)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleCandidate}
	app, err := h.svc.Detail(ctx, actor, req.ID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	default:
		return systemErrorResult, err
	}
	jobs, companies, err := h.relatedOf(ctx, []domain.Application{app})
	if err != nil {
		return systemErrorResult, err
	}
	j := jobs[app.JobID]
	return ginx.Result{
		Data: newCandidateDetail(app, j.Title, companies[j.CompanyID].Name),
	}, nil
}

// relatedOf 批量查投递关联的岗位和公司，列表页拼名字用
func (h *Handler) relatedOf(ctx context.Context, apps []domain.Application) (
	map[int64]job.Job, map[int64]company.Company, error) {
	jobIds := slice.Map(apps, func(idx int, src domain.Application) int64 {
		return src.JobID
	})
	jobs, err := h.jobSvc.GetByIds(ctx, jobIds)
	if err != nil {
		return nil, nil, err
	}
	companyIds := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		companyIds = append(companyIds, j.CompanyID)
	}
	companies, err := h.companySvc.GetByIds(ctx, companyIds)
	if err != nil {
		return nil, nil, err
	}
	return jobs, companies, nil
}

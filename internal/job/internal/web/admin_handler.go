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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job/internal/domain"
	"github.com/ecodeclub/hirehub/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 企业管理端的岗位维护接口。
// 所有操作都先校验当前账号是不是对应公司的管理团队成员。
type AdminHandler struct {
	svc        service.JobService
	companySvc company.Service
}

func NewAdminHandler(svc service.JobService, companySvc company.Service) *AdminHandler {
	return &AdminHandler{
		svc:        svc,
		companySvc: companySvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/jobs/save", ginx.BS[SaveJobReq](h.Save))
	server.POST("/jobs/publish", ginx.BS[IDReq](h.Publish))
	server.POST("/jobs/close", ginx.BS[IDReq](h.Close))
	server.POST("/jobs/company-list", ginx.BS[CompanyJobsReq](h.ListByCompany))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveJobReq, sess session.Session) (ginx.Result, error) {
	j := req.Job.toDomain()
	res, err := h.checkAdmin(ctx, sess.Claims().Uid, j.CompanyID)
	if err != nil || res.Code != 0 {
		return res, err
	}
	id, err := h.svc.Save(ctx, j)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	res, err := h.checkJobAdmin(ctx, sess.Claims().Uid, req.ID)
	if err != nil || res.Code != 0 {
		return res, err
	}
	if err = h.svc.Publish(ctx, req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Close(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	res, err := h.checkJobAdmin(ctx, sess.Claims().Uid, req.ID)
	if err != nil || res.Code != 0 {
		return res, err
	}
	if err = h.svc.Close(ctx, req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) ListByCompany(ctx *ginx.Context, req CompanyJobsReq, sess session.Session) (ginx.Result, error) {
	res, err := h.checkAdmin(ctx, sess.Claims().Uid, req.CompanyID)
	if err != nil || res.Code != 0 {
		return res, err
	}
	total, jobs, err := h.svc.ListByCompany(ctx, req.CompanyID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobListResp{
			Total: total,
			List: slice.Map(jobs, func(idx int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) checkJobAdmin(ctx *ginx.Context, uid, jobId int64) (ginx.Result, error) {
	j, err := h.svc.GetById(ctx, jobId)
	if err != nil {
		return systemErrorResult, err
	}
	return h.checkAdmin(ctx, uid, j.CompanyID)
}

func (h *AdminHandler) checkAdmin(ctx *ginx.Context, uid, companyId int64) (ginx.Result, error) {
	ok, err := h.companySvc.IsAdmin(ctx, uid, companyId)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return unauthorizedResult, nil
	}
	return ginx.Result{}, nil
}

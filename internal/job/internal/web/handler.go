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
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job/internal/domain"
	"github.com/ecodeclub/hirehub/internal/job/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 候选人端的岗位浏览接口
type Handler struct {
	svc        service.JobService
	companySvc company.Service
	logger     *elog.Component
}

func NewHandler(svc service.JobService, companySvc company.Service) *Handler {
	return &Handler{
		svc:        svc,
		companySvc: companySvc,
		logger:     elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/jobs/list", ginx.B[Page](h.PubList))
	server.POST("/jobs/detail", ginx.B[DetailReq](h.PubDetail))
}

func (h *Handler) PubList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	total, jobs, err := h.svc.PubList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	companies := map[int64]company.Company{}
	if len(jobs) > 0 {
		ids := slice.Map(jobs, func(idx int, src domain.Job) int64 {
			return src.CompanyID
		})
		var err1 error
		companies, err1 = h.companySvc.GetByIds(ctx, ids)
		// 查不到公司名也照样返回岗位列表
		if err1 != nil {
			h.logger.Error("查询公司信息失败",
				elog.Any("ids", ids),
				elog.FieldErr(err1))
		}
	}
	return ginx.Result{
		Data: JobListResp{
			Total: total,
			List: slice.Map(jobs, func(idx int, src domain.Job) Job {
				vo := newJob(src)
				vo.CompanyName = companies[src.CompanyID].Name
				return vo
			}),
		},
	}, nil
}

func (h *Handler) PubDetail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	j, err := h.svc.GetById(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	vo := newJob(j)
	c, err := h.companySvc.GetById(ctx, j.CompanyID)
	if err == nil {
		vo.CompanyName = c.Name
	}
	return ginx.Result{
		Data: vo,
	}, nil
}

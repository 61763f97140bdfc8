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
	"github.com/ecodeclub/hirehub/internal/company/internal/domain"
	"github.com/ecodeclub/hirehub/internal/company/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 候选人端的公司浏览接口
type Handler struct {
	svc service.CompanyService
}

func NewHandler(svc service.CompanyService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/companies/list", ginx.B[Page](h.List))
	server.POST("/companies/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	companies, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CompanyListResp{
			Total: total,
			List: slice.Map(companies, func(idx int, src domain.Company) Company {
				return newCompany(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	company, err := h.svc.GetById(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCompany(company),
	}, nil
}

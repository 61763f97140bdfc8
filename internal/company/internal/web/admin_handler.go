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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/company/internal/domain"
	"github.com/ecodeclub/hirehub/internal/company/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/company/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 企业管理端：维护公司资料和管理团队
type AdminHandler struct {
	svc    service.CompanyService
	logger *elog.Component
}

func NewAdminHandler(svc service.CompanyService) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/companies/save", ginx.BS[SaveCompanyReq](h.Save))
	server.POST("/companies/members/add", ginx.B[MemberReq](h.AddMember))
	server.POST("/companies/members/remove", ginx.B[MemberReq](h.RemoveMember))
	server.POST("/companies/members/list", ginx.B[DetailReq](h.ListMembers))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveCompanyReq, sess session.Session) (ginx.Result, error) {
	company := req.Company.toDomain()
	creating := company.ID == 0
	id, err := h.svc.Save(ctx, company)
	if err != nil {
		return systemErrorResult, err
	}
	if creating {
		// 建公司的人自动成为 Owner
		_, err = h.svc.AddMember(ctx, domain.Member{
			CompanyID: id,
			Uid:       sess.Claims().Uid,
			Role:      domain.RoleOwner,
		})
		if err != nil && !errors.Is(err, dao.ErrDuplicateMember) {
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) AddMember(ctx *ginx.Context, req MemberReq) (ginx.Result, error) {
	id, err := h.svc.AddMember(ctx, domain.Member{
		CompanyID: req.CompanyID,
		Uid:       req.Uid,
		Role:      domain.MemberRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateMember) {
			return duplicateMemberResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) RemoveMember(ctx *ginx.Context, req MemberReq) (ginx.Result, error) {
	err := h.svc.RemoveMember(ctx, req.CompanyID, req.Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) ListMembers(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	ms, err := h.svc.AdminUids(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: MemberListResp{
			List: slice.Map(ms, func(idx int, uid int64) Member {
				return Member{CompanyID: req.ID, Uid: uid}
			}),
		},
	}, nil
}

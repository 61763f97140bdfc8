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
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

// EmployerHandler 企业侧接口。初筛阶段的投递在这里不可见
type EmployerHandler struct {
	svc service.ApplicationService
}

func NewEmployerHandler(svc service.ApplicationService) *EmployerHandler {
	return &EmployerHandler{svc: svc}
}

func (h *EmployerHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications/job")
	g.POST("/list", ginx.BS(h.List))
	g.POST("/transition", ginx.BS(h.Transition))
	g.POST("/detail", ginx.BS(h.Detail))
}

func (h *EmployerHandler) List(ctx *ginx.Context, req ListForJobReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleEmployer}
	total, data, err := h.svc.ListForJob(ctx, actor, req.JobID,
		toStatuses(req.Statuses), req.Offset, req.Limit)
	switch {
	case err == nil:
		return ginx.Result{
			Data: StaffApplicationList{
				Total: total,
				Applications: slice.Map(data, func(idx int, src domain.Application) StaffApplication {
					return newEmployerApplication(src)
				}),
			},
		}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *EmployerHandler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleEmployer}
	err := h.svc.Transition(ctx, actor, req.ID, domain.ApplicationStatus(req.Status), req.Note)
	return transitionResult(err)
}

func (h *EmployerHandler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleEmployer}
	app, err := h.svc.Detail(ctx, actor, req.ID)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newEmployerApplication(app),
		}, nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	default:
		return systemErrorResult, err
	}
}

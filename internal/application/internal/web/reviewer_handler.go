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

// ReviewerHandler 初筛顾问侧接口
type ReviewerHandler struct {
	svc service.ApplicationService
}

func NewReviewerHandler(svc service.ApplicationService) *ReviewerHandler {
	return &ReviewerHandler{svc: svc}
}

func (h *ReviewerHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications/review")
	g.POST("/pending", ginx.BS(h.Pending))
	g.POST("/transition", ginx.BS(h.Transition))
	g.POST("/detail", ginx.BS(h.Detail))
}

func (h *ReviewerHandler) Pending(ctx *ginx.Context, req ListForJobReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleReviewer}
	total, data, err := h.svc.ListForJob(ctx, actor, req.JobID,
		toStatuses(req.Statuses), req.Offset, req.Limit)
	switch {
	case err == nil:
		return ginx.Result{
			Data: StaffApplicationList{
				Total: total,
				Applications: slice.Map(data, func(idx int, src domain.Application) StaffApplication {
					return newReviewerApplication(src)
				}),
			},
		}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *ReviewerHandler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleReviewer}
	err := h.svc.Transition(ctx, actor, req.ID, domain.ApplicationStatus(req.Status), req.Note)
	return transitionResult(err)
}

func (h *ReviewerHandler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleReviewer}
	app, err := h.svc.Detail(ctx, actor, req.ID)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newReviewerApplication(app),
		}, nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	default:
		return systemErrorResult, err
	}
}

func transitionResult(err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{}, nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	default:
		return systemErrorResult, err
	}
}

func toStatuses(statuses []uint8) []domain.ApplicationStatus {
	return slice.Map(statuses, func(idx int, src uint8) domain.ApplicationStatus {
		return domain.ApplicationStatus(src)
	})
}

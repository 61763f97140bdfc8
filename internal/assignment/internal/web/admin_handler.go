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
	"github.com/ecodeclub/hirehub/internal/assignment/internal/domain"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AssignmentService
}

func NewAdminHandler(svc service.AssignmentService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/assignment")
	g.POST("/assign", ginx.B[AssignReq](h.Assign))
	g.POST("/revoke", ginx.B[AssignReq](h.Revoke))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *AdminHandler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	id, err := h.svc.Assign(ctx, req.JobID, req.ReviewerUid)
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateAssignment) {
			return duplicateAssignmentResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Revoke(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	err := h.svc.Revoke(ctx, req.JobID, req.ReviewerUid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	var (
		res []domain.Assignment
		err error
	)
	if req.JobID > 0 {
		res, err = h.svc.ListByJob(ctx, req.JobID)
	} else {
		res, err = h.svc.ListByReviewer(ctx, req.ReviewerUid)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Assignment) Assignment {
			return newAssignment(src)
		}),
	}, nil
}

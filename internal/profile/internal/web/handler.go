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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/profile/internal/domain"
	"github.com/ecodeclub/hirehub/internal/profile/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.ProfileService
}

func NewHandler(svc service.ProfileService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.POST("/save", ginx.BS(h.Save))
	g.GET("/detail", ginx.S(h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.Profile{
		Uid:       sess.Claims().Uid,
		Name:      req.Name,
		Title:     req.Title,
		Phone:     req.Phone,
		Email:     req.Email,
		Summary:   req.Summary,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.GetByUid(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(p),
	}, nil
}

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
	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.NotificationService
}

func NewHandler(svc service.NotificationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/list", ginx.BS(h.List))
	g.POST("/read", ginx.BS(h.MarkRead))
	g.GET("/unreadCount", ginx.S(h.UnreadCount))
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	data, total, err := h.svc.List(ctx, uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: NotificationList{
			Total: total,
			Notifications: slice.Map(data, func(idx int, src domain.Notification) Notification {
				return newNotification(src)
			}),
		},
	}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req MarkReadReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkRead(ctx, sess.Claims().Uid, req.Ids)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.UnreadCount(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: cnt,
	}, nil
}

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

import "github.com/ecodeclub/hirehub/internal/notification/internal/domain"

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type MarkReadReq struct {
	Ids []int64 `json:"ids"`
}

type NotificationList struct {
	Total         int64          `json:"total,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type Notification struct {
	Id      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Read    bool   `json:"read"`
	Ctime   int64  `json:"ctime"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		Id:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Read:    n.Status == domain.ReadStatus,
		Ctime:   n.Ctime,
	}
}

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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ApplicationStatusConsumer 把投递状态变更落成站内信
type ApplicationStatusConsumer struct {
	svc      service.NotificationService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewApplicationStatusConsumer(svc service.NotificationService, q mq.MQ) (*ApplicationStatusConsumer, error) {
	groupID := "notification"
	consumer, err := q.Consumer(ApplicationStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicationStatusConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ApplicationStatusConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费投递状态事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ApplicationStatusConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt ApplicationStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.svc.Send(ctx, domain.Notification{
		Uid:     evt.Uid,
		Biz:     "application",
		BizID:   evt.ApplicationID,
		Title:   fmt.Sprintf("投递进度更新：%s", evt.CandidateLabel),
		Content: fmt.Sprintf("你投递的「%s · %s」进入了新阶段：%s", evt.CompanyName, evt.JobTitle, evt.CandidateLabel),
	})
	if err != nil {
		c.logger.Error("写入站内信失败",
			elog.FieldErr(err),
			elog.Any("消息体", evt),
		)
	}

	// 企业侧：新投递和顾问推送才会带 EmployerUids
	title, content := employerMessage(evt)
	for _, uid := range evt.EmployerUids {
		_, err = c.svc.Send(ctx, domain.Notification{
			Uid:     uid,
			Biz:     "application",
			BizID:   evt.ApplicationID,
			Title:   title,
			Content: content,
		})
		if err != nil {
			c.logger.Error("写入企业侧站内信失败",
				elog.FieldErr(err),
				elog.Int64("uid", uid),
				elog.Any("消息体", evt),
			)
		}
	}
	return nil
}

// employerMessage 企业侧的文案不能泄露初筛细节，
// 新投递只说"收到投递"，不提内部状态
func employerMessage(evt ApplicationStatusEvent) (title, content string) {
	if evt.PrevStatus == "unknown" {
		return "收到新的投递",
			fmt.Sprintf("「%s」收到了一份新的投递", evt.JobTitle)
	}
	return fmt.Sprintf("投递状态更新：%s", evt.EmployerLabel),
		fmt.Sprintf("「%s」有投递进入了新阶段：%s", evt.JobTitle, evt.EmployerLabel)
}

func (c *ApplicationStatusConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

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
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/hirehub/internal/search/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/search/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// SyncConsumer 把岗位发布事件同步进搜索索引
type SyncConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewSyncConsumer(svc service.SyncService, q mq.MQ) (*SyncConsumer, error) {
	groupID := "search"
	consumer, err := q.Consumer(JobPublishedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &SyncConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (s *SyncConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := s.Consume(ctx)
			if err != nil {
				s.logger.Error("同步岗位事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (s *SyncConsumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt JobPublishedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	docID := strconv.FormatInt(evt.ID, 10)
	err = s.svc.Input(ctx, dao.JobIndexName, docID, string(msg.Value))
	if err != nil {
		s.logger.Error("写入岗位索引失败",
			elog.FieldErr(err),
			elog.Any("消息体", evt),
		)
	}
	return err
}

func (s *SyncConsumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}

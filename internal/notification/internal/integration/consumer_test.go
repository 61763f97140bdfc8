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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/notification"
	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/event"
	"github.com/ecodeclub/hirehub/internal/notification/internal/integration/startup"
	"github.com/ecodeclub/hirehub/internal/notification/internal/web"
	"github.com/ecodeclub/hirehub/internal/pkg/mqx"
	"github.com/ecodeclub/hirehub/internal/test"
	testioc "github.com/ecodeclub/hirehub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(123)

type ConsumerTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	module   *notification.Module
	producer mqx.Producer[event.ApplicationStatusEvent]
}

func (s *ConsumerTestSuite) SetupSuite() {
	q := testioc.InitMQ()
	module, err := startup.InitModule(q)
	require.NoError(s.T(), err)
	s.module = module
	producer, err := mqx.NewGeneralProducer[event.ApplicationStatusEvent](q, event.ApplicationStatusEventName)
	require.NoError(s.T(), err)
	s.producer = producer

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *ConsumerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `notifications`").Error)
}

func (s *ConsumerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `notifications`").Error)
}

// TestConsume 投递状态事件进来之后落成站内信
func (s *ConsumerTestSuite) TestConsume() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.producer.Produce(ctx, event.ApplicationStatusEvent{
		ApplicationID:  200,
		SN:             "SN-200",
		Uid:            uid,
		JobID:          100,
		JobTitle:       "Go 研发工程师",
		CompanyName:    "字节范",
		Status:         "forwarded_to_company",
		CandidateLabel: "Shortlisted",
	})
	require.NoError(t, err)
	require.NoError(t, s.module.Consumer.Consume(ctx))

	data := s.list(t)
	require.Equal(t, int64(1), data.Total)
	n := data.Notifications[0]
	assert.True(t, n.Id > 0)
	assert.True(t, n.Ctime > 0)
	assert.Equal(t, "投递进度更新：Shortlisted", n.Title)
	assert.Equal(t, "你投递的「字节范 · Go 研发工程师」进入了新阶段：Shortlisted", n.Content)
	assert.False(t, n.Read)
}

// TestConsumeEmployer 新投递和顾问推送要同时给企业管理团队落站内信
func (s *ConsumerTestSuite) TestConsumeEmployer() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	employerUids := []int64{302, 303}
	// 新投递：候选人的动作
	err := s.producer.Produce(ctx, event.ApplicationStatusEvent{
		ApplicationID:  200,
		SN:             "SN-200",
		Uid:            uid,
		JobID:          100,
		JobTitle:       "Go 研发工程师",
		CompanyName:    "字节范",
		Status:         "applied",
		PrevStatus:     "unknown",
		CandidateLabel: "Applied",
		EmployerUids:   employerUids,
	})
	require.NoError(t, err)
	require.NoError(t, s.module.Consumer.Consume(ctx))
	// 顾问推送
	err = s.producer.Produce(ctx, event.ApplicationStatusEvent{
		ApplicationID:  200,
		SN:             "SN-200",
		Uid:            uid,
		JobID:          100,
		JobTitle:       "Go 研发工程师",
		CompanyName:    "字节范",
		Status:         "forwarded_to_company",
		PrevStatus:     "applied",
		CandidateLabel: "Shortlisted",
		EmployerUids:   employerUids,
		EmployerLabel:  "Action Required",
	})
	require.NoError(t, err)
	require.NoError(t, s.module.Consumer.Consume(ctx))

	for _, employerUid := range employerUids {
		ns, total, err := s.module.Svc.List(ctx, employerUid, 0, 10)
		require.NoError(t, err)
		require.Equal(t, int64(2), total)
		assert.ElementsMatch(t, []string{"收到新的投递", "投递状态更新：Action Required"},
			slice.Map(ns, func(idx int, src domain.Notification) string {
				return src.Title
			}))
		for _, n := range ns {
			// 企业侧文案不出现候选人视角的标签
			assert.NotContains(t, n.Content, "Applied")
			assert.NotContains(t, n.Content, "Shortlisted")
			assert.Contains(t, n.Content, "Go 研发工程师")
		}
	}
	// 候选人自己的两条照常落
	data := s.list(t)
	assert.Equal(t, int64(2), data.Total)
}

func (s *ConsumerTestSuite) TestMarkRead() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	titles := []string{"第一条", "第二条", "第三条"}
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		id, err := s.module.Svc.Send(ctx, domain.Notification{
			Uid:   uid,
			Biz:   "application",
			BizID: 200,
			Title: title,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.Equal(t, int64(3), s.unreadCount(t))

	// 只读了前两条
	req, err := http.NewRequest(http.MethodPost,
		"/notification/read", iox.NewJSONReader(web.MarkReadReq{Ids: ids[:2]}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	require.Equal(t, 0, recorder.MustScan().Code)

	assert.Equal(t, int64(1), s.unreadCount(t))
	data := s.list(t)
	assert.Equal(t, int64(3), data.Total)
	assert.ElementsMatch(t, titles, slice.Map(data.Notifications, func(idx int, src web.Notification) string {
		return src.Title
	}))
	for _, n := range data.Notifications {
		assert.Equal(t, n.Id != ids[2], n.Read)
	}
}

func (s *ConsumerTestSuite) list(t *testing.T) web.NotificationList {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost,
		"/notification/list", iox.NewJSONReader(web.Page{Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.NotificationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *ConsumerTestSuite) unreadCount(t *testing.T) int64 {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/notification/unreadCount", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func TestConsumer(t *testing.T) {
	suite.Run(t, new(ConsumerTestSuite))
}

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
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/application/internal/integration/startup"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/application/internal/web"
	"github.com/ecodeclub/hirehub/internal/assignment"
	assignmentmocks "github.com/ecodeclub/hirehub/internal/assignment/mocks"
	"github.com/ecodeclub/hirehub/internal/company"
	companymocks "github.com/ecodeclub/hirehub/internal/company/mocks"
	emailmocks "github.com/ecodeclub/hirehub/internal/email/mocks"
	"github.com/ecodeclub/hirehub/internal/job"
	jobmocks "github.com/ecodeclub/hirehub/internal/job/mocks"
	"github.com/ecodeclub/hirehub/internal/profile"
	profilemocks "github.com/ecodeclub/hirehub/internal/profile/mocks"
	smsclient "github.com/ecodeclub/hirehub/internal/sms/client"
	smsmocks "github.com/ecodeclub/hirehub/internal/sms/client/mocks"
	"github.com/ecodeclub/hirehub/internal/test"
	testioc "github.com/ecodeclub/hirehub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	candidateUid  = int64(123)
	candidate2Uid = int64(124)
	reviewerUid   = int64(301)
	employerUid   = int64(302)
	// strangerUid 没有完整档案，也没有任何授权
	strangerUid = int64(999)

	pubJobId   = int64(100)
	draftJobId = int64(101)
	companyId  = int64(88)

	resumeURL = "oss://hirehub/resume/11.pdf"
)

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	appDao   dao.ApplicationDAO
	appCache cache.ApplicationCache
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())

	jobSvc := jobmocks.NewMockJobService(ctrl)
	jobSvc.EXPECT().GetById(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (job.Job, error) {
			switch id {
			case pubJobId:
				return job.Job{ID: pubJobId, CompanyID: companyId,
					Title: "Go 研发工程师", Status: job.PublishedStatus}, nil
			case draftJobId:
				return job.Job{ID: draftJobId, CompanyID: companyId,
					Title: "还没发布的岗位", Status: job.UnpublishedStatus}, nil
			default:
				return job.Job{}, dao.ErrRecordNotFound
			}
		}).AnyTimes()
	jobSvc.EXPECT().GetByIds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) (map[int64]job.Job, error) {
			res := make(map[int64]job.Job, len(ids))
			for _, id := range ids {
				res[id] = job.Job{ID: id, CompanyID: companyId,
					Title: "Go 研发工程师", Status: job.PublishedStatus}
			}
			return res, nil
		}).AnyTimes()

	companySvc := companymocks.NewMockCompanyService(ctrl)
	companySvc.EXPECT().IsAdmin(gomock.Any(), gomock.Any(), companyId).
		DoAndReturn(func(ctx context.Context, uid, cid int64) (bool, error) {
			return uid == employerUid, nil
		}).AnyTimes()
	companySvc.EXPECT().GetById(gomock.Any(), companyId).
		Return(company.Company{ID: companyId, Name: "字节范"}, nil).AnyTimes()
	companySvc.EXPECT().GetByIds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) (map[int64]company.Company, error) {
			res := make(map[int64]company.Company, len(ids))
			for _, id := range ids {
				res[id] = company.Company{ID: id, Name: "字节范"}
			}
			return res, nil
		}).AnyTimes()

	profileSvc := profilemocks.NewMockProfileService(ctrl)
	profileIds := map[int64]int64{candidateUid: 11, candidate2Uid: 12}
	profileSvc.EXPECT().Completed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64) (profile.Profile, bool, error) {
			id, ok := profileIds[uid]
			if !ok {
				return profile.Profile{}, false, nil
			}
			return profile.Profile{
				ID: id, Uid: uid, Name: "大明",
				Email: "daming@hirehub.cn", Phone: "13888888888",
				ResumeURL: resumeURL,
			}, true, nil
		}).AnyTimes()
	profileSvc.EXPECT().GetByUid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64) (profile.Profile, error) {
			return profile.Profile{ID: profileIds[uid], Uid: uid, Name: "大明",
				Email: "daming@hirehub.cn", Phone: "13888888888"}, nil
		}).AnyTimes()

	assignSvc := assignmentmocks.NewMockAssignmentService(ctrl)
	assignSvc.EXPECT().IsAssigned(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid, jobId int64) (bool, error) {
			return uid == reviewerUid, nil
		}).AnyTimes()

	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	smsClient := smsmocks.NewMockClient(ctrl)
	smsClient.EXPECT().Send(gomock.Any()).Return(smsclient.SendResp{}, nil).AnyTimes()

	module, err := startup.InitModule(testioc.InitMQ(),
		&job.Module{Svc: jobSvc},
		&company.Module{Svc: companySvc},
		&profile.Module{Svc: profileSvc},
		&assignment.Module{Svc: assignSvc},
		emailSvc, smsClient)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	// 测试专用：从请求头里取操作人，不走真正的登录
	server.Use(func(ctx *gin.Context) {
		uid := candidateUid
		if v := ctx.GetHeader("x-uid"); v != "" {
			uid, _ = strconv.ParseInt(v, 10, 64)
		}
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.ReviewerHdl.PrivateRoutes(server.Engine)
	module.EmployerHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.appDao = dao.NewApplicationDAO(s.db)
	s.appCache = cache.NewApplicationCache(testioc.InitCache())
	// 上一轮测试可能留下脏缓存
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.appCache.DelCandidateList(ctx, candidateUid)
	_ = s.appCache.DelCandidateList(ctx, candidate2Uid)
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `applications`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `application_histories`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `applications`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `application_histories`").Error)
	// 候选人列表是带缓存的，残留会影响下一个用例
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.appCache.DelCandidateList(ctx, candidateUid)
	_ = s.appCache.DelCandidateList(ctx, candidate2Uid)
}

func (s *HandlerTestSuite) TestApply() {
	testCases := []struct {
		name     string
		uid      int64
		req      web.ApplyReq
		before   func(t *testing.T)
		after    func(t *testing.T)
		wantCode int
		wantBiz  int
	}{
		{
			name: "新投递",
			uid:  candidateUid,
			req:  web.ApplyReq{JobID: pubJobId},
			before: func(t *testing.T) {
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				app, err := s.appDao.GetById(ctx, 1)
				require.NoError(t, err)
				assert.NotEmpty(t, app.SN)
				assert.Equal(t, pubJobId, app.JobId)
				assert.Equal(t, int64(11), app.CandidateId)
				assert.Equal(t, candidateUid, app.Uid)
				assert.Equal(t, uint8(1), app.Status)
				assert.Equal(t, resumeURL, app.ResumeURL)
				assert.Equal(t, int64(1), app.Version)
				entries, err := s.appDao.HistoryOf(ctx, app.Id)
				require.NoError(t, err)
				require.Len(t, entries, 1)
				assert.Equal(t, uint8(1), entries[0].Status)
			},
			wantCode: 200,
		},
		{
			name: "重复投递同一岗位",
			uid:  candidateUid,
			req:  web.ApplyReq{JobID: pubJobId},
			before: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_, err := s.appDao.Create(ctx, dao.Application{
					SN: "SN-DUP", JobId: pubJobId, CandidateId: 11,
					Uid: candidateUid, Status: 1, ResumeURL: resumeURL,
				}, dao.ApplicationHistory{Status: 1, ActorId: 11})
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			wantCode: 200,
			wantBiz:  421003,
		},
		{
			name:     "岗位还没发布",
			uid:      candidateUid,
			req:      web.ApplyReq{JobID: draftJobId},
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			wantCode: 200,
			wantBiz:  421006,
		},
		{
			name:     "岗位不存在",
			uid:      candidateUid,
			req:      web.ApplyReq{JobID: 987654},
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			wantCode: 200,
			wantBiz:  421006,
		},
		{
			name:     "档案不完整",
			uid:      strangerUid,
			req:      web.ApplyReq{JobID: pubJobId},
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			wantCode: 200,
			wantBiz:  421002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/applications/apply", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			req.Header.Set("x-uid", strconv.FormatInt(tc.uid, 10))
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, resp.Code)
			if tc.wantBiz == 0 {
				assert.True(t, resp.Data > 0)
			}
			tc.after(t)
			require.NoError(t, s.db.Exec("TRUNCATE TABLE `applications`").Error)
			require.NoError(t, s.db.Exec("TRUNCATE TABLE `application_histories`").Error)
		})
	}
}

// TestLifecycle 从投递到企业接受的完整链路
func (s *HandlerTestSuite) TestLifecycle() {
	t := s.T()
	// 候选人投递
	id := s.apply(t, candidateUid, pubJobId)

	// 审核员推给企业
	resp := s.transit(t, reviewerUid, "/applications/review/transition",
		web.TransitionReq{ID: id, Status: 4, Note: "背景不错"})
	require.Equal(t, 0, resp.Code)
	s.assertStatus(t, id, 4, 2)

	// 同一个流转重复提交，幂等，不长版本号也不加流水
	resp = s.transit(t, reviewerUid, "/applications/review/transition",
		web.TransitionReq{ID: id, Status: 4})
	require.Equal(t, 0, resp.Code)
	s.assertStatus(t, id, 4, 2)

	// 企业标记已查看
	resp = s.transit(t, employerUid, "/applications/job/transition",
		web.TransitionReq{ID: id, Status: 5})
	require.Equal(t, 0, resp.Code)
	s.assertStatus(t, id, 5, 3)

	// 企业接受
	resp = s.transit(t, employerUid, "/applications/job/transition",
		web.TransitionReq{ID: id, Status: 6})
	require.Equal(t, 0, resp.Code)
	s.assertStatus(t, id, 6, 4)

	// 终态之后再动就是非法流转
	resp = s.transit(t, employerUid, "/applications/job/transition",
		web.TransitionReq{ID: id, Status: 7})
	require.Equal(t, 421005, resp.Code)
	s.assertStatus(t, id, 6, 4)

	// 全程的流水：applied -> forwarded -> viewed -> accepted
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entries, err := s.appDao.HistoryOf(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	statuses := []uint8{1, 4, 5, 6}
	for i, entry := range entries {
		assert.Equal(t, statuses[i], entry.Status)
	}
	assert.Equal(t, "背景不错", entries[1].Note)
	assert.Equal(t, reviewerUid, entries[1].ActorId)
}

func (s *HandlerTestSuite) TestTransitionRejections() {
	t := s.T()
	id := s.apply(t, candidateUid, pubJobId)

	testCases := []struct {
		name    string
		uid     int64
		path    string
		req     web.TransitionReq
		wantBiz int
	}{
		{
			name:    "投递不存在",
			uid:     reviewerUid,
			path:    "/applications/review/transition",
			req:     web.TransitionReq{ID: 987654, Status: 4},
			wantBiz: 421001,
		},
		{
			name:    "没被指派的审核员",
			uid:     strangerUid,
			path:    "/applications/review/transition",
			req:     web.TransitionReq{ID: id, Status: 4},
			wantBiz: 421004,
		},
		{
			name:    "企业碰不了初筛阶段的投递",
			uid:     employerUid,
			path:    "/applications/job/transition",
			req:     web.TransitionReq{ID: id, Status: 6},
			wantBiz: 421005,
		},
		{
			name:    "审核员走不了企业的流转",
			uid:     reviewerUid,
			path:    "/applications/review/transition",
			req:     web.TransitionReq{ID: id, Status: 6},
			wantBiz: 421005,
		},
		{
			// 目标状态和当前一致也得先过鉴权，
			// 否则没资格的人能靠返回码探测投递当前的状态
			name:    "没资格的人提交同状态流转",
			uid:     strangerUid,
			path:    "/applications/review/transition",
			req:     web.TransitionReq{ID: id, Status: 1},
			wantBiz: 421004,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			resp := s.transit(t, tc.uid, tc.path, tc.req)
			assert.Equal(t, tc.wantBiz, resp.Code)
			// 状态原地不动
			s.assertStatus(t, id, 1, 1)
		})
	}
}

// TestConcurrentApply 并发重复投递只能成功一次，靠唯一索引兜底
func (s *HandlerTestSuite) TestConcurrentApply() {
	t := s.T()
	const n = 2
	codes := make([]int, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			// goroutine 里不能用 require，结果攒出来统一断言
			req, err := http.NewRequest(http.MethodPost,
				"/applications/apply", iox.NewJSONReader(web.ApplyReq{JobID: pubJobId}))
			if err != nil {
				codes[idx] = -1
				return
			}
			req.Header.Set("content-type", "application/json")
			req.Header.Set("x-uid", strconv.FormatInt(candidateUid, 10))
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			resp, err := recorder.Scan()
			if err != nil {
				codes[idx] = -1
				return
			}
			codes[idx] = resp.Code
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{0, 421003}, codes)
	// 库里只有一条主记录和一条流水
	var total int64
	require.NoError(t, s.db.Model(&dao.Application{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entries, err := s.appDao.HistoryOf(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestConcurrentTransition 同一条投递并发两个不同目标的流转，
// 版本号 CAS 保证只有一个赢家
func (s *HandlerTestSuite) TestConcurrentTransition() {
	t := s.T()
	id := s.apply(t, candidateUid, pubJobId)

	targets := []uint8{3, 4}
	codes := make([]int, len(targets))
	var wg sync.WaitGroup
	wg.Add(len(targets))
	for i, target := range targets {
		go func(idx int, target uint8) {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodPost,
				"/applications/review/transition",
				iox.NewJSONReader(web.TransitionReq{ID: id, Status: target}))
			if err != nil {
				codes[idx] = -1
				return
			}
			req.Header.Set("content-type", "application/json")
			req.Header.Set("x-uid", strconv.FormatInt(reviewerUid, 10))
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			resp, err := recorder.Scan()
			if err != nil {
				codes[idx] = -1
				return
			}
			codes[idx] = resp.Code
		}(i, target)
	}
	wg.Wait()

	// 输家重试之后发现状态已经被人改过，当前状态走不了它要的流转
	assert.ElementsMatch(t, []int{0, 421005}, codes)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	app, err := s.appDao.GetById(ctx, id)
	require.NoError(t, err)
	// 恰好推进一步
	assert.Equal(t, int64(2), app.Version)
	assert.Contains(t, []uint8{3, 4}, app.Status)
	entries, err := s.appDao.HistoryOf(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, app.Status, entries[1].Status)
}

func (s *HandlerTestSuite) TestCandidateList() {
	t := s.T()
	// 同一个候选人投了两个岗位，一个刚投，一个已经推给企业
	s.seed(t, dao.Application{Id: 1, SN: "SN-1", JobId: pubJobId, CandidateId: 12,
		Uid: candidate2Uid, Status: 1, ResumeURL: resumeURL, Version: 1, Ctime: 1000, Utime: 1000})
	s.seed(t, dao.Application{Id: 2, SN: "SN-2", JobId: 102, CandidateId: 12,
		Uid: candidate2Uid, Status: 4, ResumeURL: resumeURL, Version: 2, Ctime: 2000, Utime: 2000})

	req, err := http.NewRequest(http.MethodPost,
		"/applications/list", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(candidate2Uid, 10))
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CandidateApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[web.CandidateApplicationList]{
		Data: web.CandidateApplicationList{
			Applications: []web.CandidateApplication{
				// 最近投递在前，候选人看到的是粗粒度标签
				{Id: 2, SN: "SN-2", JobId: 102, JobTitle: "Go 研发工程师",
					CompanyName: "字节范", Status: "Shortlisted", Ctime: 2000, Utime: 2000},
				{Id: 1, SN: "SN-1", JobId: pubJobId, JobTitle: "Go 研发工程师",
					CompanyName: "字节范", Status: "Applied", Ctime: 1000, Utime: 1000},
			},
		},
	}, recorder.MustScan())
}

func (s *HandlerTestSuite) TestCandidateDetail() {
	t := s.T()
	id := s.apply(t, candidateUid, pubJobId)
	resp := s.transit(t, reviewerUid, "/applications/review/transition",
		web.TransitionReq{ID: id, Status: 4, Note: "内部备注，候选人不可见"})
	require.Equal(t, 0, resp.Code)

	req, err := http.NewRequest(http.MethodPost,
		"/applications/detail", iox.NewJSONReader(web.IdReq{ID: id}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(candidateUid, 10))
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CandidateApplicationDetail]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	detail := recorder.MustScan().Data
	assert.Equal(t, "Shortlisted", detail.Status)
	assert.Equal(t, resumeURL, detail.ResumeURL)
	// 流水只给粗粒度标签和时间，不给操作人和备注
	require.Len(t, detail.History, 2)
	assert.Equal(t, "Applied", detail.History[0].Status)
	assert.Equal(t, "Shortlisted", detail.History[1].Status)

	// 别的候选人看不了
	req, err = http.NewRequest(http.MethodPost,
		"/applications/detail", iox.NewJSONReader(web.IdReq{ID: id}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(candidate2Uid, 10))
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.CandidateApplicationDetail]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 421004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestEmployerList() {
	t := s.T()
	// 一个岗位下七个候选人，覆盖全部状态
	for st := uint8(1); st <= 7; st++ {
		s.seed(t, dao.Application{
			Id: int64(st), SN: "SN-" + strconv.Itoa(int(st)),
			JobId: pubJobId, CandidateId: int64(20 + st), Uid: int64(220 + st),
			Status: st, ResumeURL: resumeURL, Version: 1,
			Ctime: int64(st) * 1000, Utime: int64(st) * 1000,
		})
	}

	req, err := http.NewRequest(http.MethodPost,
		"/applications/job/list", iox.NewJSONReader(web.ListForJobReq{
			JobID: pubJobId, Offset: 0, Limit: 10,
		}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(employerUid, 10))
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.StaffApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data := recorder.MustScan().Data
	// 初筛阶段的三条根本不在列表里
	assert.Equal(t, int64(4), data.Total)
	wantStatuses := []string{"Rejected", "Shortlisted", "Action Required", "Action Required"}
	require.Len(t, data.Applications, 4)
	for i, app := range data.Applications {
		assert.Equal(t, wantStatuses[i], app.Status)
	}

	// 显式传筛选条件也捞不出初筛阶段的投递
	req, err = http.NewRequest(http.MethodPost,
		"/applications/job/list", iox.NewJSONReader(web.ListForJobReq{
			JobID: pubJobId, Statuses: []uint8{1, 2, 3}, Offset: 0, Limit: 10,
		}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(employerUid, 10))
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.StaffApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data = recorder.MustScan().Data
	assert.Equal(t, int64(0), data.Total)
	assert.Empty(t, data.Applications)

	// 混着传只剩下可见的那部分
	req, err = http.NewRequest(http.MethodPost,
		"/applications/job/list", iox.NewJSONReader(web.ListForJobReq{
			JobID: pubJobId, Statuses: []uint8{2, 6}, Offset: 0, Limit: 10,
		}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(employerUid, 10))
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.StaffApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data = recorder.MustScan().Data
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Applications, 1)
	assert.Equal(t, "SN-6", data.Applications[0].SN)
	assert.Equal(t, "Shortlisted", data.Applications[0].Status)

	// 企业直接看初筛阶段的详情同样不行
	req, err = http.NewRequest(http.MethodPost,
		"/applications/job/detail", iox.NewJSONReader(web.IdReq{ID: 1}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(employerUid, 10))
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.StaffApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 421004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestReviewerPending() {
	t := s.T()
	for st := uint8(1); st <= 7; st++ {
		s.seed(t, dao.Application{
			Id: int64(st), SN: "SN-" + strconv.Itoa(int(st)),
			JobId: pubJobId, CandidateId: int64(20 + st), Uid: int64(220 + st),
			Status: st, ResumeURL: resumeURL, Version: 1,
			Ctime: int64(st) * 1000, Utime: int64(st) * 1000,
		})
	}

	req, err := http.NewRequest(http.MethodPost,
		"/applications/review/pending", iox.NewJSONReader(web.ListForJobReq{
			JobID: pubJobId, Offset: 0, Limit: 10,
		}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(reviewerUid, 10))
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.StaffApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data := recorder.MustScan().Data
	// 默认只看待处理队列，审核员看到的是真实状态
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Applications, 2)
	assert.Equal(t, "pending_hr", data.Applications[0].Status)
	assert.Equal(t, "applied", data.Applications[1].Status)

	// 没被指派的人连列表都看不了
	req, err = http.NewRequest(http.MethodPost,
		"/applications/review/pending", iox.NewJSONReader(web.ListForJobReq{
			JobID: pubJobId, Offset: 0, Limit: 10,
		}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(strangerUid, 10))
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.StaffApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 421004, recorder.MustScan().Code)
}

// apply 候选人投递，返回新投递的 ID
func (s *HandlerTestSuite) apply(t *testing.T, uid, jobId int64) int64 {
	req, err := http.NewRequest(http.MethodPost,
		"/applications/apply", iox.NewJSONReader(web.ApplyReq{JobID: jobId}))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(uid, 10))
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Equal(t, 0, resp.Code)
	require.True(t, resp.Data > 0)
	return resp.Data
}

func (s *HandlerTestSuite) transit(t *testing.T, uid int64,
	path string, r web.TransitionReq) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(r))
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-uid", strconv.FormatInt(uid, 10))
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) assertStatus(t *testing.T, id int64, status uint8, version int64) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	app, err := s.appDao.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, status, app.Status)
	assert.Equal(t, version, app.Version)
}

func (s *HandlerTestSuite) seed(t *testing.T, app dao.Application) {
	t.Helper()
	require.NoError(t, s.db.Create(&app).Error)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

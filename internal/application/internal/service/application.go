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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/ecodeclub/hirehub/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrApplicationNotFound  = errors.New("投递记录不存在")
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrInvalidTransition    = errors.New("非法的状态流转")
	ErrJobNotOpen           = errors.New("岗位未开放投递")
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=applicationmocks -typed ApplicationService
type ApplicationService interface {
	// Apply 候选人投递，落库成功之后异步分发通知
	Apply(ctx context.Context, uid, jobId int64) (int64, error)
	// Transition 驱动状态流转。先鉴权；鉴权通过之后，
	// 目标状态和当前状态一致时幂等返回，不追加流水，也不发通知
	Transition(ctx context.Context, actor domain.Actor, appId int64,
		target domain.ApplicationStatus, note string) error
	Detail(ctx context.Context, actor domain.Actor, appId int64) (domain.Application, error)
	ListForCandidate(ctx context.Context, uid int64) ([]domain.Application, error)
	// ListForJob statuses 为空时按角色给默认投影：
	// 企业侧看不到初筛阶段，审核侧默认只看待处理队列
	ListForJob(ctx context.Context, actor domain.Actor, jobId int64,
		statuses []domain.ApplicationStatus, offset, limit int) (int64, []domain.Application, error)
}

type applicationService struct {
	repo       repository.ApplicationRepository
	jobSvc     job.Service
	guard      *Guard
	dispatcher *Dispatcher
	snGen      *sequencenumber.Generator
	logger     *elog.Component
}

func NewApplicationService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	guard *Guard,
	dispatcher *Dispatcher,
	snGen *sequencenumber.Generator) ApplicationService {
	return &applicationService{
		repo:       repo,
		jobSvc:     jobSvc,
		guard:      guard,
		dispatcher: dispatcher,
		snGen:      snGen,
		logger:     elog.DefaultLogger,
	}
}

func (s *applicationService) Apply(ctx context.Context, uid, jobId int64) (int64, error) {
	p, err := s.guard.CheckApply(ctx, uid)
	if err != nil {
		return 0, err
	}
	j, err := s.jobSvc.GetById(ctx, jobId)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			// 不存在的岗位和没开放的岗位对候选人是一回事
			return 0, ErrJobNotOpen
		}
		return 0, err
	}
	if j.Status != job.PublishedStatus {
		return 0, ErrJobNotOpen
	}
	sn, err := s.snGen.Generate(uid)
	if err != nil {
		return 0, err
	}
	app := domain.Application{
		SN:          sn,
		JobID:       jobId,
		CandidateID: p.ID,
		Uid:         uid,
		Status:      domain.AppliedStatus,
		// 投递那一刻的简历快照
		ResumeURL: p.ResumeURL,
	}
	id, err := s.repo.Create(ctx, app)
	if err != nil {
		return 0, err
	}
	app.ID = id
	s.dispatcher.Dispatch(app, domain.UnknownStatus)
	return id, nil
}

func (s *applicationService) Transition(ctx context.Context, actor domain.Actor, appId int64,
	target domain.ApplicationStatus, note string) error {
	err := s.transit(ctx, actor, appId, target, note)
	if errors.Is(err, dao.ErrConcurrentModification) {
		// 乐观锁冲突重试一次：重查之后目标状态可能已经幂等了
		s.logger.Warn("投递状态流转乐观锁冲突，重试",
			elog.Int64("appId", appId))
		return s.transit(ctx, actor, appId, target, note)
	}
	return err
}

func (s *applicationService) transit(ctx context.Context, actor domain.Actor, appId int64,
	target domain.ApplicationStatus, note string) error {
	app, err := s.repo.FindById(ctx, appId)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}
	// 鉴权放在幂等判断前面：没资格的人连"目标状态和当前一致"
	// 这个事实都不该探测到
	if err = s.guard.CheckTransition(ctx, actor, app); err != nil {
		return err
	}
	if app.Status == target {
		// 幂等：重复提交同一个流转不是错误
		return nil
	}
	if !domain.CanTransit(app.Status, target, actor.Role) {
		return ErrInvalidTransition
	}
	prev := app.Status
	if err = s.repo.AppendTransition(ctx, app, target, actor.Uid, note); err != nil {
		return err
	}
	app.Status = target
	s.dispatcher.Dispatch(app, prev)
	return nil
}

func (s *applicationService) Detail(ctx context.Context, actor domain.Actor, appId int64) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, appId)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Application{}, ErrApplicationNotFound
		}
		return domain.Application{}, err
	}
	if err = s.guard.CheckRead(ctx, actor, app); err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

func (s *applicationService) ListForCandidate(ctx context.Context, uid int64) ([]domain.Application, error) {
	return s.repo.ListByUid(ctx, uid)
}

func (s *applicationService) ListForJob(ctx context.Context, actor domain.Actor, jobId int64,
	statuses []domain.ApplicationStatus, offset, limit int) (int64, []domain.Application, error) {
	if err := s.guard.CheckList(ctx, actor, jobId); err != nil {
		return 0, nil, err
	}
	switch actor.Role {
	case domain.RoleEmployer:
		if len(statuses) == 0 {
			statuses = domain.EmployerVisibleStatuses()
		} else {
			// 企业侧自带的筛选条件也不能把初筛阶段捞出来
			statuses = slice.FilterDelete(statuses, func(idx int, src domain.ApplicationStatus) bool {
				return domain.HiddenFromEmployer(src)
			})
			if len(statuses) == 0 {
				return 0, []domain.Application{}, nil
			}
		}
	case domain.RoleReviewer:
		if len(statuses) == 0 {
			// 待处理队列
			statuses = []domain.ApplicationStatus{
				domain.AppliedStatus,
				domain.PendingHRStatus,
			}
		}
	}
	var (
		eg    errgroup.Group
		total int64
		data  []domain.Application
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByJob(ctx, jobId, statuses)
		return err
	})
	eg.Go(func() error {
		var err error
		data, err = s.repo.ListByJob(ctx, jobId, statuses, offset, limit)
		return err
	})
	return total, data, eg.Wait()
}

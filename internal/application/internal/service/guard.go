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

	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/assignment"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/ecodeclub/hirehub/internal/profile"
)

var (
	// ErrUnauthorized 身份不满足，和 ErrInvalidTransition 是两回事：
	// 前者是"你不配"，后者是"这步棋不存在"
	ErrUnauthorized      = errors.New("无权操作该投递")
	ErrProfileIncomplete = errors.New("候选人档案不完整")
)

// Guard 投递相关操作的准入检查。
// 只管"这个人有没有资格动这条投递"，状态机本身的合法性交给 domain
type Guard struct {
	profileSvc    profile.Service
	jobSvc        job.Service
	companySvc    company.Service
	assignmentSvc assignment.Service
}

func NewGuard(profileSvc profile.Service,
	jobSvc job.Service,
	companySvc company.Service,
	assignmentSvc assignment.Service) *Guard {
	return &Guard{
		profileSvc:    profileSvc,
		jobSvc:        jobSvc,
		companySvc:    companySvc,
		assignmentSvc: assignmentSvc,
	}
}

// CheckApply 投递前置检查，通过时返回档案（投递要做简历快照）
func (g *Guard) CheckApply(ctx context.Context, uid int64) (profile.Profile, error) {
	p, ok, err := g.profileSvc.Completed(ctx, uid)
	if err != nil {
		return profile.Profile{}, err
	}
	if !ok {
		return profile.Profile{}, ErrProfileIncomplete
	}
	return p, nil
}

// CheckTransition 检查 actor 有没有资格驱动这条投递的流转
func (g *Guard) CheckTransition(ctx context.Context, actor domain.Actor, app domain.Application) error {
	switch actor.Role {
	case domain.RoleReviewer:
		return g.checkAssigned(ctx, actor.Uid, app.JobID)
	case domain.RoleEmployer:
		return g.checkCompanyAdmin(ctx, actor.Uid, app.JobID)
	default:
		// 候选人投完之后只能旁观
		return ErrUnauthorized
	}
}

// CheckRead 检查 actor 能不能看这条投递的详情
func (g *Guard) CheckRead(ctx context.Context, actor domain.Actor, app domain.Application) error {
	switch actor.Role {
	case domain.RoleCandidate:
		if app.Uid != actor.Uid {
			return ErrUnauthorized
		}
		return nil
	case domain.RoleReviewer:
		return g.checkAssigned(ctx, actor.Uid, app.JobID)
	case domain.RoleEmployer:
		if err := g.checkCompanyAdmin(ctx, actor.Uid, app.JobID); err != nil {
			return err
		}
		// 初筛阶段的投递对企业不存在
		if domain.HiddenFromEmployer(app.Status) {
			return ErrUnauthorized
		}
		return nil
	default:
		return ErrUnauthorized
	}
}

// CheckList 检查 actor 能不能看某个岗位下的投递列表
func (g *Guard) CheckList(ctx context.Context, actor domain.Actor, jobId int64) error {
	switch actor.Role {
	case domain.RoleReviewer:
		return g.checkAssigned(ctx, actor.Uid, jobId)
	case domain.RoleEmployer:
		return g.checkCompanyAdmin(ctx, actor.Uid, jobId)
	default:
		return ErrUnauthorized
	}
}

func (g *Guard) checkAssigned(ctx context.Context, uid, jobId int64) error {
	ok, err := g.assignmentSvc.IsAssigned(ctx, uid, jobId)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

func (g *Guard) checkCompanyAdmin(ctx context.Context, uid, jobId int64) error {
	j, err := g.jobSvc.GetById(ctx, jobId)
	if err != nil {
		return err
	}
	ok, err := g.companySvc.IsAdmin(ctx, uid, j.CompanyID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

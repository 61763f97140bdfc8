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
	"testing"

	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	assignmentmocks "github.com/ecodeclub/hirehub/internal/assignment/mocks"
	companymocks "github.com/ecodeclub/hirehub/internal/company/mocks"
	"github.com/ecodeclub/hirehub/internal/job"
	jobmocks "github.com/ecodeclub/hirehub/internal/job/mocks"
	"github.com/ecodeclub/hirehub/internal/profile"
	profilemocks "github.com/ecodeclub/hirehub/internal/profile/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuard_CheckApply(t *testing.T) {
	const uid = int64(123)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) profile.Service
		wantErr error
	}{
		{
			name: "档案完整",
			mock: func(ctrl *gomock.Controller) profile.Service {
				svc := profilemocks.NewMockProfileService(ctrl)
				svc.EXPECT().Completed(gomock.Any(), uid).
					Return(profile.Profile{ID: 11, Uid: uid, ResumeURL: "oss://r/11.pdf"}, true, nil)
				return svc
			},
		},
		{
			name: "档案不完整",
			mock: func(ctrl *gomock.Controller) profile.Service {
				svc := profilemocks.NewMockProfileService(ctrl)
				svc.EXPECT().Completed(gomock.Any(), uid).
					Return(profile.Profile{}, false, nil)
				return svc
			},
			wantErr: ErrProfileIncomplete,
		},
		{
			name: "压根没有档案",
			mock: func(ctrl *gomock.Controller) profile.Service {
				svc := profilemocks.NewMockProfileService(ctrl)
				svc.EXPECT().Completed(gomock.Any(), uid).
					Return(profile.Profile{}, false, nil)
				return svc
			},
			wantErr: ErrProfileIncomplete,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			g := NewGuard(tc.mock(ctrl), nil, nil, nil)
			p, err := g.CheckApply(context.Background(), uid)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, int64(11), p.ID)
			}
		})
	}
}

func TestGuard_CheckTransition(t *testing.T) {
	const (
		reviewerUid = int64(301)
		employerUid = int64(302)
		jobId       = int64(77)
		companyId   = int64(88)
	)
	app := domain.Application{ID: 1, JobID: jobId, Uid: 123, Status: domain.AppliedStatus}

	testCases := []struct {
		name    string
		actor   domain.Actor
		mock    func(ctrl *gomock.Controller) *Guard
		wantErr error
	}{
		{
			name:  "被指派的审核员",
			actor: domain.Actor{Uid: reviewerUid, Role: domain.RoleReviewer},
			mock: func(ctrl *gomock.Controller) *Guard {
				assignSvc := assignmentmocks.NewMockAssignmentService(ctrl)
				assignSvc.EXPECT().IsAssigned(gomock.Any(), reviewerUid, jobId).
					Return(true, nil)
				return NewGuard(nil, nil, nil, assignSvc)
			},
		},
		{
			name:  "没被指派的审核员",
			actor: domain.Actor{Uid: reviewerUid, Role: domain.RoleReviewer},
			mock: func(ctrl *gomock.Controller) *Guard {
				assignSvc := assignmentmocks.NewMockAssignmentService(ctrl)
				assignSvc.EXPECT().IsAssigned(gomock.Any(), reviewerUid, jobId).
					Return(false, nil)
				return NewGuard(nil, nil, nil, assignSvc)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:  "公司管理员",
			actor: domain.Actor{Uid: employerUid, Role: domain.RoleEmployer},
			mock: func(ctrl *gomock.Controller) *Guard {
				jobSvc := jobmocks.NewMockJobService(ctrl)
				jobSvc.EXPECT().GetById(gomock.Any(), jobId).
					Return(job.Job{ID: jobId, CompanyID: companyId}, nil)
				companySvc := companymocks.NewMockCompanyService(ctrl)
				companySvc.EXPECT().IsAdmin(gomock.Any(), employerUid, companyId).
					Return(true, nil)
				return NewGuard(nil, jobSvc, companySvc, nil)
			},
		},
		{
			name:  "别的公司的管理员",
			actor: domain.Actor{Uid: employerUid, Role: domain.RoleEmployer},
			mock: func(ctrl *gomock.Controller) *Guard {
				jobSvc := jobmocks.NewMockJobService(ctrl)
				jobSvc.EXPECT().GetById(gomock.Any(), jobId).
					Return(job.Job{ID: jobId, CompanyID: companyId}, nil)
				companySvc := companymocks.NewMockCompanyService(ctrl)
				companySvc.EXPECT().IsAdmin(gomock.Any(), employerUid, companyId).
					Return(false, nil)
				return NewGuard(nil, jobSvc, companySvc, nil)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:  "候选人不能驱动流转",
			actor: domain.Actor{Uid: app.Uid, Role: domain.RoleCandidate},
			mock: func(ctrl *gomock.Controller) *Guard {
				return NewGuard(nil, nil, nil, nil)
			},
			wantErr: ErrUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			g := tc.mock(ctrl)
			err := g.CheckTransition(context.Background(), tc.actor, app)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGuard_CheckRead(t *testing.T) {
	const (
		candidateUid = int64(123)
		employerUid  = int64(302)
		jobId        = int64(77)
		companyId    = int64(88)
	)

	t.Run("候选人只能看自己的投递", func(t *testing.T) {
		g := NewGuard(nil, nil, nil, nil)
		app := domain.Application{ID: 1, JobID: jobId, Uid: candidateUid}
		err := g.CheckRead(context.Background(),
			domain.Actor{Uid: candidateUid, Role: domain.RoleCandidate}, app)
		require.NoError(t, err)
		err = g.CheckRead(context.Background(),
			domain.Actor{Uid: candidateUid + 1, Role: domain.RoleCandidate}, app)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("初筛阶段的投递企业看不到", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobSvc := jobmocks.NewMockJobService(ctrl)
		jobSvc.EXPECT().GetById(gomock.Any(), jobId).
			Return(job.Job{ID: jobId, CompanyID: companyId}, nil).AnyTimes()
		companySvc := companymocks.NewMockCompanyService(ctrl)
		// 管理员身份没问题，挡住它的是状态可见性
		companySvc.EXPECT().IsAdmin(gomock.Any(), employerUid, companyId).
			Return(true, nil).AnyTimes()
		g := NewGuard(nil, jobSvc, companySvc, nil)
		actor := domain.Actor{Uid: employerUid, Role: domain.RoleEmployer}

		hidden := []domain.ApplicationStatus{
			domain.AppliedStatus, domain.PendingHRStatus, domain.HRRejectedStatus,
		}
		for _, st := range hidden {
			err := g.CheckRead(context.Background(), actor,
				domain.Application{ID: 1, JobID: jobId, Uid: candidateUid, Status: st})
			assert.ErrorIs(t, err, ErrUnauthorized, st.String())
		}
		err := g.CheckRead(context.Background(), actor,
			domain.Application{ID: 1, JobID: jobId, Uid: candidateUid, Status: domain.ForwardedStatus})
		assert.NoError(t, err)
	})
}

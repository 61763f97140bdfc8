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
	"github.com/ecodeclub/hirehub/internal/application/internal/event"
	"github.com/ecodeclub/hirehub/internal/company"
	companymocks "github.com/ecodeclub/hirehub/internal/company/mocks"
	emailmocks "github.com/ecodeclub/hirehub/internal/email/mocks"
	"github.com/ecodeclub/hirehub/internal/job"
	jobmocks "github.com/ecodeclub/hirehub/internal/job/mocks"
	"github.com/ecodeclub/hirehub/internal/profile"
	profilemocks "github.com/ecodeclub/hirehub/internal/profile/mocks"
	smsclient "github.com/ecodeclub/hirehub/internal/sms/client"
	smsmocks "github.com/ecodeclub/hirehub/internal/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// capturingProducer 测试里把事件攒下来断言
type capturingProducer struct {
	events []event.ApplicationStatusEvent
}

func (p *capturingProducer) Produce(_ context.Context, evt event.ApplicationStatusEvent) error {
	p.events = append(p.events, evt)
	return nil
}

func TestDispatcher_Dispatch(t *testing.T) {
	const (
		candidateUid = int64(123)
		jobId        = int64(77)
		companyId    = int64(88)
	)
	adminUids := []int64{302, 303}
	app := domain.Application{
		ID:     1,
		SN:     "SN-1",
		JobID:  jobId,
		Uid:    candidateUid,
		Status: domain.AppliedStatus,
	}

	testCases := []struct {
		name             string
		status           domain.ApplicationStatus
		prev             domain.ApplicationStatus
		mock             func(ctrl *gomock.Controller) (profile.Service, job.Service, company.Service)
		wantEmployerUids []int64
		wantLabel        string
		wantMails        int
		wantSms          int
	}{
		{
			name:   "新投递通知企业管理团队",
			status: domain.AppliedStatus,
			prev:   domain.UnknownStatus,
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service, company.Service) {
				profileSvc, jobSvc, companySvc := baseMocks(ctrl, candidateUid, jobId, companyId)
				companySvc.EXPECT().AdminUids(gomock.Any(), companyId).Return(adminUids, nil)
				return profileSvc, jobSvc, companySvc
			},
			wantEmployerUids: adminUids,
			// 初筛阶段对企业没有状态标签可言
			wantLabel: "",
			wantMails: 1,
		},
		{
			name:   "顾问推送通知企业",
			status: domain.ForwardedStatus,
			prev:   domain.AppliedStatus,
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service, company.Service) {
				profileSvc, jobSvc, companySvc := baseMocks(ctrl, candidateUid, jobId, companyId)
				companySvc.EXPECT().AdminUids(gomock.Any(), companyId).Return(adminUids, nil)
				return profileSvc, jobSvc, companySvc
			},
			wantEmployerUids: adminUids,
			wantLabel:        "Action Required",
			wantMails:        1,
		},
		{
			name:   "企业自己的流转不通知企业",
			status: domain.CompanyAcceptedStatus,
			prev:   domain.CompanyViewedStatus,
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service, company.Service) {
				// 不设置 AdminUids 的期望：被调用就直接失败
				return baseMocks(ctrl, candidateUid, jobId, companyId)
			},
			wantEmployerUids: nil,
			wantLabel:        "Shortlisted",
			wantMails:        1,
			// 终态发短信
			wantSms: 1,
		},
		{
			name:   "查管理团队失败只影响企业侧，不影响事件和邮件",
			status: domain.ForwardedStatus,
			prev:   domain.AppliedStatus,
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service, company.Service) {
				profileSvc, jobSvc, companySvc := baseMocks(ctrl, candidateUid, jobId, companyId)
				companySvc.EXPECT().AdminUids(gomock.Any(), companyId).
					Return(nil, context.DeadlineExceeded)
				return profileSvc, jobSvc, companySvc
			},
			wantEmployerUids: nil,
			wantLabel:        "Action Required",
			wantMails:        1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			profileSvc, jobSvc, companySvc := tc.mock(ctrl)

			emailSvc := emailmocks.NewMockService(ctrl)
			emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
				Return(nil).Times(tc.wantMails)
			smsClient := smsmocks.NewMockClient(ctrl)
			smsClient.EXPECT().Send(gomock.Any()).
				Return(smsclient.SendResp{}, nil).Times(tc.wantSms)

			producer := &capturingProducer{}
			d := NewDispatcher(profileSvc, jobSvc, companySvc, emailSvc, smsClient, producer)

			a := app
			a.Status = tc.status
			d.dispatch(context.Background(), a, tc.prev)

			require.Len(t, producer.events, 1)
			evt := producer.events[0]
			assert.Equal(t, tc.wantEmployerUids, evt.EmployerUids)
			assert.Equal(t, tc.wantLabel, evt.EmployerLabel)
			assert.Equal(t, candidateUid, evt.Uid)
			assert.Equal(t, tc.prev.String(), evt.PrevStatus)
			assert.Equal(t, tc.status.String(), evt.Status)
		})
	}
}

func baseMocks(ctrl *gomock.Controller, candidateUid, jobId, companyId int64) (
	*profilemocks.MockProfileService, *jobmocks.MockJobService, *companymocks.MockCompanyService) {
	jobSvc := jobmocks.NewMockJobService(ctrl)
	jobSvc.EXPECT().GetById(gomock.Any(), jobId).
		Return(job.Job{ID: jobId, CompanyID: companyId, Title: "Go 研发工程师"}, nil)
	companySvc := companymocks.NewMockCompanyService(ctrl)
	companySvc.EXPECT().GetById(gomock.Any(), companyId).
		Return(company.Company{ID: companyId, Name: "字节范"}, nil)
	profileSvc := profilemocks.NewMockProfileService(ctrl)
	profileSvc.EXPECT().GetByUid(gomock.Any(), candidateUid).
		Return(profile.Profile{
			ID: 11, Uid: candidateUid, Name: "大明",
			Email: "daming@hirehub.cn", Phone: "13888888888",
		}, nil)
	return profileSvc, jobSvc, companySvc
}

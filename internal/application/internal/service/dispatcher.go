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
	"fmt"
	"time"

	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/application/internal/event"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/email"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/ecodeclub/hirehub/internal/profile"
	smsclient "github.com/ecodeclub/hirehub/internal/sms/client"
	"github.com/gotomicro/ego/core/elog"
)

// Dispatcher 投递状态变更之后的通知分发。
// 全部尽力而为：任何一步失败只记日志，绝不影响已经落库的状态变更。
// 必须在写库成功之后调用。
type Dispatcher struct {
	profileSvc profile.Service
	jobSvc     job.Service
	companySvc company.Service
	emailSvc   email.Service
	smsClient  smsclient.Client
	producer   event.ApplicationStatusEventProducer
	logger     *elog.Component
}

func NewDispatcher(profileSvc profile.Service,
	jobSvc job.Service,
	companySvc company.Service,
	emailSvc email.Service,
	smsClient smsclient.Client,
	producer event.ApplicationStatusEventProducer) *Dispatcher {
	return &Dispatcher{
		profileSvc: profileSvc,
		jobSvc:     jobSvc,
		companySvc: companySvc,
		emailSvc:   emailSvc,
		smsClient:  smsClient,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

// Dispatch prev 传流转前的状态，新建投递传 UnknownStatus
func (d *Dispatcher) Dispatch(app domain.Application, prev domain.ApplicationStatus) {
	go func() {
		const timeout = 3 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		d.dispatch(ctx, app, prev)
	}()
}

func (d *Dispatcher) dispatch(ctx context.Context, app domain.Application, prev domain.ApplicationStatus) {
	j, err := d.jobSvc.GetById(ctx, app.JobID)
	if err != nil {
		d.logger.Error("通知分发查询岗位失败",
			elog.FieldErr(err),
			elog.Int64("jobId", app.JobID))
		return
	}
	c, err := d.companySvc.GetById(ctx, j.CompanyID)
	if err != nil {
		d.logger.Error("通知分发查询公司失败",
			elog.FieldErr(err),
			elog.Int64("companyId", j.CompanyID))
		return
	}

	evt := event.ApplicationStatusEvent{
		ApplicationID:  app.ID,
		SN:             app.SN,
		Uid:            app.Uid,
		JobID:          app.JobID,
		JobTitle:       j.Title,
		CompanyName:    c.Name,
		Status:         app.Status.String(),
		PrevStatus:     prev.String(),
		CandidateLabel: app.Status.CandidateView(),
		EmployerUids:   d.employerUids(ctx, app, j, prev),
		EmployerLabel:  app.Status.EmployerView(),
	}
	if err = d.producer.Produce(ctx, evt); err != nil {
		d.logger.Error("发送投递状态事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}

	p, err := d.profileSvc.GetByUid(ctx, app.Uid)
	if err != nil {
		d.logger.Error("通知分发查询候选人档案失败",
			elog.FieldErr(err),
			elog.Int64("uid", app.Uid))
		return
	}
	d.notifyCandidate(ctx, app, p, j, c)
}

// employerUids 企业侧要通知的账号。
// 候选人的动作（新投递）和顾问的推送通知企业管理团队，
// 企业自己驱动的流转不用通知自己
func (d *Dispatcher) employerUids(ctx context.Context,
	app domain.Application, j job.Job, prev domain.ApplicationStatus) []int64 {
	created := prev == domain.UnknownStatus
	if !created && app.Status != domain.ForwardedStatus {
		return nil
	}
	uids, err := d.companySvc.AdminUids(ctx, j.CompanyID)
	if err != nil {
		d.logger.Error("通知分发查询企业管理团队失败",
			elog.FieldErr(err),
			elog.Int64("companyId", j.CompanyID))
		return nil
	}
	return uids
}

func (d *Dispatcher) notifyCandidate(ctx context.Context,
	app domain.Application, p profile.Profile, j job.Job, c company.Company) {
	label := app.Status.CandidateView()
	if p.Email != "" {
		err := d.emailSvc.SendMail(ctx, email.Mail{
			From:    "HireHub",
			To:      p.Email,
			Subject: fmt.Sprintf("投递进度更新：%s", label),
			Body: []byte(fmt.Sprintf(
				"<p>你好 %s，</p><p>你投递的「%s · %s」进入了新阶段：<b>%s</b>。</p>",
				p.Name, c.Name, j.Title, label)),
		})
		if err != nil {
			d.logger.Error("发送投递通知邮件失败",
				elog.FieldErr(err),
				elog.String("sn", app.SN))
		}
	}
	// 终态才发短信，打扰要有度
	if app.Status.IsTerminal() && p.Phone != "" {
		_, err := d.smsClient.Send(smsclient.SendReq{
			PhoneNumbers: []string{p.Phone},
			TemplateID:   "SMS_APPLICATION_STATUS",
			TemplateParam: map[string]string{
				"job":    j.Title,
				"status": label,
			},
		})
		if err != nil {
			d.logger.Error("发送投递通知短信失败",
				elog.FieldErr(err),
				elog.String("sn", app.SN))
		}
	}
}

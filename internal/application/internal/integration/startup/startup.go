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

package startup

import (
	"sync"

	"github.com/ecodeclub/hirehub/internal/application"
	"github.com/ecodeclub/hirehub/internal/application/internal/event"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/application/internal/service"
	"github.com/ecodeclub/hirehub/internal/application/internal/web"
	"github.com/ecodeclub/hirehub/internal/assignment"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/email"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/ecodeclub/hirehub/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hirehub/internal/profile"
	smsclient "github.com/ecodeclub/hirehub/internal/sms/client"
	testioc "github.com/ecodeclub/hirehub/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

// InitModule 测试里面不用依赖注入框架，直接手动装配，
// 依赖的其余模块由调用方传入，通常塞 mock 进来
func InitModule(q mq.MQ,
	jobModule *job.Module,
	companyModule *company.Module,
	profileModule *profile.Module,
	assignmentModule *assignment.Module,
	emailSvc email.Service,
	smsClient smsclient.Client) (*application.Module, error) {
	db := testioc.InitDB()
	InitTableOnce(db)
	producer, err := event.NewApplicationStatusEventProducer(q)
	if err != nil {
		return nil, err
	}
	repo := repository.NewApplicationRepository(
		dao.NewApplicationDAO(db),
		cache.NewApplicationCache(testioc.InitCache()))
	guard := service.NewGuard(profileModule.Svc, jobModule.Svc,
		companyModule.Svc, assignmentModule.Svc)
	dispatcher := service.NewDispatcher(profileModule.Svc, jobModule.Svc,
		companyModule.Svc, emailSvc, smsClient, producer)
	svc := service.NewApplicationService(repo, jobModule.Svc,
		guard, dispatcher, sequencenumber.NewGenerator())
	return &application.Module{
		Hdl:         web.NewHandler(svc, jobModule.Svc, companyModule.Svc),
		ReviewerHdl: web.NewReviewerHandler(svc),
		EmployerHdl: web.NewEmployerHandler(svc),
		Svc:         svc,
	}, nil
}

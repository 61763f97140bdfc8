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

//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/ecache"
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
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	jobModule *job.Module,
	companyModule *company.Module,
	profileModule *profile.Module,
	assignmentModule *assignment.Module,
	emailSvc email.Service,
	smsClient smsclient.Client) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewApplicationCache,
		repository.NewApplicationRepository,
		event.NewApplicationStatusEventProducer,
		sequencenumber.NewGenerator,
		service.NewGuard,
		service.NewDispatcher,
		service.NewApplicationService,
		web.NewHandler,
		web.NewReviewerHandler,
		web.NewEmployerHandler,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*company.Module), "Svc"),
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.FieldsOf(new(*assignment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	daoOnce.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewApplicationDAO(db)
}

//go:build wireinject

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

package job

import (
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job/internal/event"
	"github.com/ecodeclub/hirehub/internal/job/internal/repository"
	"github.com/ecodeclub/hirehub/internal/job/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/job/internal/service"
	"github.com/ecodeclub/hirehub/internal/job/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, companyModule *company.Module) *Module {
	wire.Build(
		initJobDAO,
		initJobPublishedEventProducer,
		repository.NewJobRepository,
		service.NewJobService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*company.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initJobDAO(db *egorm.Component) dao.JobDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewJobDAO(db)
}

func initJobPublishedEventProducer(q mq.MQ) event.JobPublishedEventProducer {
	producer, err := event.NewJobPublishedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

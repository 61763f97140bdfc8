// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, companyModule *company.Module) *Module {
	jobDAO := initJobDAO(db)
	jobRepository := repository.NewJobRepository(jobDAO)
	jobPublishedEventProducer := initJobPublishedEventProducer(q)
	jobService := service.NewJobService(jobRepository, jobPublishedEventProducer)
	v := companyModule.Svc
	v2 := web.NewAdminHandler(jobService, v)
	v3 := web.NewHandler(jobService, v)
	module := &Module{
		AdminHdl: v2,
		Hdl:      v3,
		Svc:      jobService,
	}
	return module
}

// wire.go:

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

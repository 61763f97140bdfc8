// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package application

import (
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
	"github.com/ecodeclub/hirehub/internal/sms/client"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, jobModule *job.Module, companyModule *company.Module, profileModule *profile.Module, assignmentModule *assignment.Module, emailSvc email.Service, smsClient client.Client) (*Module, error) {
	applicationDAO := InitTablesOnce(db)
	applicationCache := cache.NewApplicationCache(ec)
	applicationRepository := repository.NewApplicationRepository(applicationDAO, applicationCache)
	v := jobModule.Svc
	v2 := profileModule.Svc
	v3 := companyModule.Svc
	v4 := assignmentModule.Svc
	guard := service.NewGuard(v2, v, v3, v4)
	applicationStatusEventProducer, err := event.NewApplicationStatusEventProducer(q)
	if err != nil {
		return nil, err
	}
	dispatcher := service.NewDispatcher(v2, v, v3, emailSvc, smsClient, applicationStatusEventProducer)
	generator := sequencenumber.NewGenerator()
	applicationService := service.NewApplicationService(applicationRepository, v, guard, dispatcher, generator)
	v5 := web.NewHandler(applicationService, v, v3)
	v6 := web.NewReviewerHandler(applicationService)
	v7 := web.NewEmployerHandler(applicationService)
	module := &Module{
		Hdl:         v5,
		ReviewerHdl: v6,
		EmployerHdl: v7,
		Svc:         applicationService,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	daoOnce.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewApplicationDAO(db)
}

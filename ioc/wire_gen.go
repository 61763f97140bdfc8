// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/hirehub/internal/application"
	"github.com/ecodeclub/hirehub/internal/assignment"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/ecodeclub/hirehub/internal/notification"
	"github.com/ecodeclub/hirehub/internal/profile"
	"github.com/ecodeclub/hirehub/internal/search"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	cache := InitCache(cmdable)
	mq := InitMQ()
	module := company.InitModule(v)
	jobModule := job.InitModule(v, mq, module)
	profileModule, err := profile.InitModule(v)
	if err != nil {
		return nil, err
	}
	assignmentModule, err := assignment.InitModule(v)
	if err != nil {
		return nil, err
	}
	service := InitEmailService()
	client := InitSMSClient()
	applicationModule, err := application.InitModule(v, cache, mq, jobModule, module, profileModule, assignmentModule, service, client)
	if err != nil {
		return nil, err
	}
	v2 := applicationModule.Hdl
	v3 := applicationModule.ReviewerHdl
	v4 := applicationModule.EmployerHdl
	v5 := profileModule.Hdl
	v6 := jobModule.Hdl
	v7 := module.Hdl
	elasticClient := InitES()
	searchModule, err := search.InitModule(elasticClient, mq)
	if err != nil {
		return nil, err
	}
	v8 := searchModule.Hdl
	generator := InitSnowflakeGenerator()
	notificationModule, err := notification.InitModule(v, mq, generator)
	if err != nil {
		return nil, err
	}
	v9 := notificationModule.Hdl
	component := initGinxServer(provider, v2, v3, v4, v5, v6, v7, v8, v9)
	v10 := module.AdminHdl
	v11 := jobModule.AdminHdl
	v12 := assignmentModule.AdminHdl
	adminServer := InitAdminServer(v10, v11, v12)
	v13 := initMQConsumers(notificationModule, searchModule)
	app := &App{
		Web:       component,
		Admin:     adminServer,
		Consumers: v13,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES,
	InitSnowflakeGenerator, InitEmailService, InitSMSClient)

//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES,
	InitSnowflakeGenerator, InitEmailService, InitSMSClient)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		company.InitModule,
		job.InitModule,
		profile.InitModule,
		assignment.InitModule,
		notification.InitModule,
		search.InitModule,
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl", "ReviewerHdl", "EmployerHdl"),
		wire.FieldsOf(new(*profile.Module), "Hdl"),
		wire.FieldsOf(new(*job.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*company.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		wire.FieldsOf(new(*assignment.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initMQConsumers)
	return new(App), nil
}

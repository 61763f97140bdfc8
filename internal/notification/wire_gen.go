// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package notification

import (
	"github.com/ecodeclub/hirehub/internal/notification/internal/event"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/notification/internal/service"
	"github.com/ecodeclub/hirehub/internal/notification/internal/web"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, gen *snowflake.Generator) (*Module, error) {
	notificationDAO := InitTablesOnce(db)
	notificationRepository := repository.NewNotificationRepository(notificationDAO)
	notificationService := service.NewNotificationService(notificationRepository, gen)
	v := web.NewHandler(notificationService)
	v2, err := event.NewApplicationStatusConsumer(notificationService, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Hdl:      v,
		Svc:      notificationService,
		Consumer: v2,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.NotificationDAO {
	daoOnce.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMNotificationDAO(db)
}

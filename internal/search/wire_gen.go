// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package search

import (
	"github.com/ecodeclub/hirehub/internal/search/internal/event"
	"github.com/ecodeclub/hirehub/internal/search/internal/repository"
	"github.com/ecodeclub/hirehub/internal/search/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/search/internal/service"
	"github.com/ecodeclub/hirehub/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/olivere/elastic/v7"
	"sync"
)

// Injectors from wire.go:

func InitModule(es *elastic.Client, q mq.MQ) (*Module, error) {
	jobDAO := InitIndexOnce(es)
	jobRepo := repository.NewJobRepo(jobDAO)
	searchService := service.NewSearchService(jobRepo)
	v := web.NewHandler(searchService)
	anyDAO := dao.NewAnyESDAO(es)
	anyRepo := repository.NewAnyRepo(anyDAO)
	syncService := service.NewSyncService(anyRepo)
	v2, err := event.NewSyncConsumer(syncService, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Hdl:      v,
		Svc:      searchService,
		Consumer: v2,
	}
	return module, nil
}

// wire.go:

var initOnce = sync.Once{}

func InitIndexOnce(es *elastic.Client) dao.JobDAO {
	initOnce.Do(func() {
		_ = dao.InitES(es)
	})
	return dao.NewJobElasticDAO(es)
}

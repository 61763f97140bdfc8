// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package profile

import (
	"github.com/ecodeclub/hirehub/internal/profile/internal/repository"
	"github.com/ecodeclub/hirehub/internal/profile/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/profile/internal/service"
	"github.com/ecodeclub/hirehub/internal/profile/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	profileDAO := InitTablesOnce(db)
	profileRepository := repository.NewProfileRepository(profileDAO)
	profileService := service.NewProfileService(profileRepository)
	v := web.NewHandler(profileService)
	module := &Module{
		Hdl: v,
		Svc: profileService,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProfileDAO {
	daoOnce.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProfileDAO(db)
}

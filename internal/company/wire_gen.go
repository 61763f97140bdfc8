// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package company

import (
	"github.com/ecodeclub/hirehub/internal/company/internal/repository"
	"github.com/ecodeclub/hirehub/internal/company/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/company/internal/service"
	"github.com/ecodeclub/hirehub/internal/company/internal/web"
	"github.com/ego-component/egorm"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) *Module {
	companyDAO := initCompanyDAO(db)
	companyRepository := repository.NewCompanyRepository(companyDAO)
	companyService := service.NewCompanyService(companyRepository)
	v := web.NewAdminHandler(companyService)
	v2 := web.NewHandler(companyService)
	module := &Module{
		AdminHdl: v,
		Hdl:      v2,
		Svc:      companyService,
	}
	return module
}

// wire.go:

func initCompanyDAO(db *egorm.Component) dao.CompanyDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMCompanyDAO(db)
}

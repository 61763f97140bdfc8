// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package assignment

import (
	"github.com/ecodeclub/hirehub/internal/assignment/internal/repository"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/service"
	"github.com/ecodeclub/hirehub/internal/assignment/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	assignmentDAO := InitTablesOnce(db)
	assignmentRepository := repository.NewAssignmentRepository(assignmentDAO)
	assignmentService := service.NewAssignmentService(assignmentRepository)
	v := web.NewAdminHandler(assignmentService)
	module := &Module{
		AdminHdl: v,
		Svc:      assignmentService,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.AssignmentDAO {
	daoOnce.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMAssignmentDAO(db)
}

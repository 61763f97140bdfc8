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

package startup

import (
	"sync"

	"github.com/ecodeclub/hirehub/internal/notification"
	"github.com/ecodeclub/hirehub/internal/notification/internal/event"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/notification/internal/service"
	"github.com/ecodeclub/hirehub/internal/notification/internal/web"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	testioc "github.com/ecodeclub/hirehub/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

// InitModule 测试里面不用依赖注入框架，直接手动装配
func InitModule(q mq.MQ) (*notification.Module, error) {
	db := testioc.InitDB()
	InitTableOnce(db)
	gen, err := snowflake.NewGenerator(1)
	if err != nil {
		return nil, err
	}
	repo := repository.NewNotificationRepository(dao.NewGORMNotificationDAO(db))
	svc := service.NewNotificationService(repo, gen)
	consumer, err := event.NewApplicationStatusConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	return &notification.Module{
		Hdl:      web.NewHandler(svc),
		Svc:      svc,
		Consumer: consumer,
	}, nil
}

package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
}

// Consumer 后台事件消费者，启动之后自己拉消息
type Consumer interface {
	Start(ctx context.Context)
}

package ioc

import (
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

func InitSnowflakeGenerator() *snowflake.Generator {
	nodeId := econf.GetInt64("snowflake.nodeId")
	gen, err := snowflake.NewGenerator(nodeId)
	if err != nil {
		panic(err)
	}
	return gen
}

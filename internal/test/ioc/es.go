package testioc

import (
	"fmt"
	"sync"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/olivere/elastic/v7"
)

var (
	esClient   *elastic.Client
	esInitOnce sync.Once
)

func InitES() *elastic.Client {
	esInitOnce.Do(func() {
		econf.Set("es.url", "http://127.0.0.1:9200")
		econf.Set("es.sniff", false)
		type Config struct {
			Url   string `yaml:"url"`
			Sniff bool   `yaml:"sniff"`
		}
		var cfg Config
		err := econf.UnmarshalKey("es", &cfg)
		if err != nil {
			panic(fmt.Errorf("读取 ES 配置失败 %w", err))
		}
		const timeout = 10 * time.Second
		esClient, err = elastic.NewClient(
			elastic.SetURL(cfg.Url),
			elastic.SetSniff(cfg.Sniff),
			elastic.SetHealthcheckTimeoutStartup(timeout),
		)
		if err != nil {
			panic(err)
		}
	})
	return esClient
}

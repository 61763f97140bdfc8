package ioc

import (
	"github.com/ecodeclub/hirehub/internal/email"
	"github.com/ecodeclub/hirehub/internal/email/aliyun"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		FromEmail       string `yaml:"fromEmail"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.FromEmail)
	if err != nil {
		panic(err)
	}
	return svc
}

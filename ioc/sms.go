package ioc

import (
	"github.com/ecodeclub/hirehub/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

func InitSMSClient() client.Client {
	// 本地开发不想真发短信的时候用 console
	if econf.GetString("sms.provider") == "console" {
		return client.NewConsoleClient()
	}
	type Config struct {
		SecretID  string `yaml:"secretID"`
		SecretKey string `yaml:"secretKey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	aliClient, err := client.NewAliyunSMS(cfg.SecretID, cfg.SecretKey)
	if err != nil {
		panic(err)
	}
	return aliClient
}

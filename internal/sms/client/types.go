package client

import (
	"errors"
)

const (
	OK = "Ok"
)

var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信客户端抽象，屏蔽具体云厂商
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks -typed Client
type Client interface {
	Send(req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers  []string
	TemplateID    string
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID string
	// PhoneNumbers 去掉 +86 后的手机号到发送状态的映射
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}

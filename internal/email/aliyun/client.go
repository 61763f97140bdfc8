package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/hirehub/internal/email"
)

// AliyunDirectMailAPI 阿里云邮件推送客户端
type AliyunDirectMailAPI struct {
	client    *dm20151123.Client
	fromEmail string
}

// NewAliyunDirectMailAPI
// fromEmail 是控制台配置好的发信地址，例如 noreply@mail.hirehub.cn
func NewAliyunDirectMailAPI(accessKeyID, accessKeySecret, fromEmail string) (*AliyunDirectMailAPI, error) {
	config := &credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}

	cred, err := credential.NewCredential(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	apiConfig := &openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	}

	client, err := dm20151123.NewClient(apiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create DirectMail client: %w", err)
	}

	return &AliyunDirectMailAPI{
		client:    client,
		fromEmail: fromEmail,
	}, nil
}

// SendMail 实现 email.Service 接口
func (a *AliyunDirectMailAPI) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName:    tea.String(a.fromEmail),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	runtime := &util.RuntimeOptions{}
	_, err := a.client.SingleSendMailWithOptions(request, runtime)
	if err != nil {
		return a.handleError(err)
	}
	return nil
}

func (a *AliyunDirectMailAPI) handleError(err error) error {
	var sdkError *tea.SDKError
	if errors.As(err, &sdkError) {
		errorMsg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
		if sdkError.Data != nil {
			var errorData map[string]any
			decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
			if decodeErr := decoder.Decode(&errorData); decodeErr == nil {
				if recommend, exists := errorData["Recommend"]; exists {
					errorMsg += fmt.Sprintf(" | 建议: %v", recommend)
				}
				if requestId, exists := errorData["RequestId"]; exists {
					errorMsg += fmt.Sprintf(" | RequestId: %v", requestId)
				}
			}
		}
		return errors.New(errorMsg)
	}
	return fmt.Errorf("邮件发送失败: %w", err)
}

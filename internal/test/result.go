package test

// Result 接口层统一的响应结构，测试里用来反序列化断言
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

package test

import (
	"encoding/json"
	"net/http/httptest"
)

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

// JSONResponseRecorder 拿到 JSON 响应之后反序列化为 Result[T]
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func (r *JSONResponseRecorder[T]) Scan() (Result[T], error) {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	return res, err
}

// MustScan 测试里面随便用，反序列化失败直接 panic
func (r *JSONResponseRecorder[T]) MustScan() Result[T] {
	res, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return res
}

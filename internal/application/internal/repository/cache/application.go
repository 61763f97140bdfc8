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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/pkg/errors"
)

const (
	// 候选人的投递列表变化低频，缓存住，写路径上主动失效
	candidateListExpiration = 30 * time.Minute
)

var (
	ErrKeyNotFound = errors.New("缓存中没有对应的key")
)

type ApplicationCache interface {
	SetCandidateList(ctx context.Context, uid int64, apps []domain.Application) error
	GetCandidateList(ctx context.Context, uid int64) ([]domain.Application, error)
	DelCandidateList(ctx context.Context, uid int64) error
}

type applicationCache struct {
	ec ecache.Cache
}

func NewApplicationCache(ec ecache.Cache) ApplicationCache {
	return &applicationCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "application:",
		},
	}
}

func (c *applicationCache) SetCandidateList(ctx context.Context, uid int64, apps []domain.Application) error {
	data, err := json.Marshal(apps)
	if err != nil {
		return errors.Wrap(err, "序列化投递列表失败")
	}
	return c.ec.Set(ctx, c.candidateKey(uid), string(data), candidateListExpiration)
}

func (c *applicationCache) GetCandidateList(ctx context.Context, uid int64) ([]domain.Application, error) {
	val := c.ec.Get(ctx, c.candidateKey(uid))
	if val.KeyNotFound() {
		return nil, ErrKeyNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var apps []domain.Application
	err := json.Unmarshal([]byte(val.Val.(string)), &apps)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化投递列表失败")
	}
	return apps, nil
}

func (c *applicationCache) DelCandidateList(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.candidateKey(uid))
	return err
}

func (c *applicationCache) candidateKey(uid int64) string {
	return fmt.Sprintf("candidate:%d", uid)
}

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

package snowflake

import (
	"github.com/bwmarrin/snowflake"
)

// Generator 通知这类写入量大的表不用自增主键，用雪花ID，
// 方便以后分库分表
type Generator struct {
	node *snowflake.Node
}

// NewGenerator nodeId 是部署实例的编号，多实例部署时各自不同
func NewGenerator(nodeId int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

func (g *Generator) NextID() int64 {
	return g.node.Generate().Int64()
}

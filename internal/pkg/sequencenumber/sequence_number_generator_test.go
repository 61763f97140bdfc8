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

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		id   int64
		want string
	}{
		{
			name: "uid尾号不足四位要补零",
			id:   7,
			want: "10000000007abcd",
		},
		{
			name: "uid尾号只取最后四位",
			id:   123456789,
			want: "10000006789abcd",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := NewGeneratorWith(
				func(_ time.Time) int64 { return 1000000 },
				func() string { return "abcd" })
			sn, err := gen.Generate(tc.id)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, sn)
		})
	}
}

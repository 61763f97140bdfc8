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

package domain

type NotificationStatus uint8

const (
	UnreadStatus NotificationStatus = 0
	ReadStatus   NotificationStatus = 1
)

func (s NotificationStatus) ToUint8() uint8 {
	return uint8(s)
}

// Notification 站内信
type Notification struct {
	ID      int64
	Uid     int64
	Biz     string
	BizID   int64
	Title   string
	Content string
	Status  NotificationStatus
	Ctime   int64
	Utime   int64
}

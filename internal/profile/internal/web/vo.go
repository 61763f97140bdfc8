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

package web

import "github.com/ecodeclub/hirehub/internal/profile/internal/domain"

type SaveProfileReq struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Summary   string `json:"summary"`
	ResumeURL string `json:"resumeUrl"`
}

type Profile struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Summary   string `json:"summary"`
	ResumeURL string `json:"resumeUrl"`
	Complete  bool   `json:"complete"`
	Utime     int64  `json:"utime"`
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		Id:        p.ID,
		Name:      p.Name,
		Title:     p.Title,
		Phone:     p.Phone,
		Email:     p.Email,
		Summary:   p.Summary,
		ResumeURL: p.ResumeURL,
		Complete:  p.Complete(),
		Utime:     p.Utime,
	}
}

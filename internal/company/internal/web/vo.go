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

import (
	"github.com/ecodeclub/hirehub/internal/company/internal/domain"
)

type SaveCompanyReq struct {
	Company Company `json:"company"`
}

type Company struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Intro    string `json:"intro,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
	Utime    int64  `json:"utime,omitempty"`
}

func (c Company) toDomain() domain.Company {
	return domain.Company{
		ID:       c.ID,
		Name:     c.Name,
		Intro:    c.Intro,
		Website:  c.Website,
		Location: c.Location,
	}
}

func newCompany(c domain.Company) Company {
	return Company{
		ID:       c.ID,
		Name:     c.Name,
		Intro:    c.Intro,
		Website:  c.Website,
		Location: c.Location,
		Utime:    c.Utime,
	}
}

type CompanyListResp struct {
	Total int64     `json:"total"`
	List  []Company `json:"list"`
}

type DetailReq struct {
	ID int64 `json:"id,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type MemberReq struct {
	CompanyID int64 `json:"company_id,omitempty"`
	Uid       int64 `json:"uid,omitempty"`
	Role      uint8 `json:"role,omitempty"`
}

type Member struct {
	ID        int64 `json:"id,omitempty"`
	CompanyID int64 `json:"company_id,omitempty"`
	Uid       int64 `json:"uid,omitempty"`
	Role      uint8 `json:"role,omitempty"`
}

type MemberListResp struct {
	List []Member `json:"list"`
}

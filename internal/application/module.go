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

package application

import (
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/application/internal/service"
	"github.com/ecodeclub/hirehub/internal/application/internal/web"
)

type (
	Handler           = web.Handler
	ReviewerHandler   = web.ReviewerHandler
	EmployerHandler   = web.EmployerHandler
	Service           = service.ApplicationService
	Application       = domain.Application
	ApplicationStatus = domain.ApplicationStatus
	Actor             = domain.Actor
)

const (
	AppliedStatus         = domain.AppliedStatus
	PendingHRStatus       = domain.PendingHRStatus
	HRRejectedStatus      = domain.HRRejectedStatus
	ForwardedStatus       = domain.ForwardedStatus
	CompanyViewedStatus   = domain.CompanyViewedStatus
	CompanyAcceptedStatus = domain.CompanyAcceptedStatus
	CompanyRejectedStatus = domain.CompanyRejectedStatus

	RoleCandidate = domain.RoleCandidate
	RoleReviewer  = domain.RoleReviewer
	RoleEmployer  = domain.RoleEmployer
)

type Module struct {
	Hdl         *Handler
	ReviewerHdl *ReviewerHandler
	EmployerHdl *EmployerHandler
	Svc         Service
}

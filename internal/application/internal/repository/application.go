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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/application/internal/domain"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/application/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ApplicationRepository interface {
	// Create 初始状态 applied，并落第一条流水
	Create(ctx context.Context, app domain.Application) (int64, error)
	// FindById 带全量流水
	FindById(ctx context.Context, id int64) (domain.Application, error)
	// AppendTransition 乐观锁条件更新 + 追加一条流水。
	// app 里的 Version 就是本次 CAS 依据的版本号。
	AppendTransition(ctx context.Context, app domain.Application,
		status domain.ApplicationStatus, actorId int64, note string) error
	ListByJob(ctx context.Context, jobId int64,
		statuses []domain.ApplicationStatus, offset, limit int) ([]domain.Application, error)
	CountByJob(ctx context.Context, jobId int64, statuses []domain.ApplicationStatus) (int64, error)
	// ListByUid 不带流水，最近投递在前
	ListByUid(ctx context.Context, uid int64) ([]domain.Application, error)
}

type applicationRepository struct {
	dao    dao.ApplicationDAO
	cache  cache.ApplicationCache
	logger *elog.Component
}

func NewApplicationRepository(d dao.ApplicationDAO, c cache.ApplicationCache) ApplicationRepository {
	return &applicationRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(app), dao.ApplicationHistory{
		Status:  app.Status.ToUint8(),
		ActorId: app.CandidateID,
		Note:    "submitted",
	})
	if err != nil {
		return 0, err
	}
	r.delCandidateList(ctx, app.Uid)
	return id, nil
}

func (r *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	entity, err := r.dao.GetById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	entries, err := r.dao.HistoryOf(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	app := r.toDomain(entity)
	app.History = slice.Map(entries, func(idx int, src dao.ApplicationHistory) domain.HistoryEntry {
		return domain.HistoryEntry{
			Status:  domain.ApplicationStatus(src.Status),
			ActorID: src.ActorId,
			Note:    src.Note,
			Ctime:   src.Ctime,
		}
	})
	return app, nil
}

func (r *applicationRepository) AppendTransition(ctx context.Context, app domain.Application,
	status domain.ApplicationStatus, actorId int64, note string) error {
	err := r.dao.UpdateStatus(ctx, app.ID, app.Version, status.ToUint8(), dao.ApplicationHistory{
		ActorId: actorId,
		Note:    note,
	})
	if err != nil {
		return err
	}
	r.delCandidateList(ctx, app.Uid)
	return nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobId int64,
	statuses []domain.ApplicationStatus, offset, limit int) ([]domain.Application, error) {
	apps, err := r.dao.ListByJob(ctx, jobId, r.toStatuses(statuses), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobId int64,
	statuses []domain.ApplicationStatus) (int64, error) {
	return r.dao.CountByJob(ctx, jobId, r.toStatuses(statuses))
}

func (r *applicationRepository) ListByUid(ctx context.Context, uid int64) ([]domain.Application, error) {
	apps, err := r.cache.GetCandidateList(ctx, uid)
	if err == nil {
		return apps, nil
	}
	entities, err := r.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	apps = slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	})
	if err = r.cache.SetCandidateList(ctx, uid, apps); err != nil {
		// 缓存挂了不影响主链路
		r.logger.Error("回写投递列表缓存失败",
			elog.Int64("uid", uid),
			elog.FieldErr(err))
	}
	return apps, nil
}

// delCandidateList 写路径之后主动失效候选人列表缓存
func (r *applicationRepository) delCandidateList(ctx context.Context, uid int64) {
	if err := r.cache.DelCandidateList(ctx, uid); err != nil {
		r.logger.Error("失效投递列表缓存失败",
			elog.Int64("uid", uid),
			elog.FieldErr(err))
	}
}

func (r *applicationRepository) toStatuses(statuses []domain.ApplicationStatus) []uint8 {
	return slice.Map(statuses, func(idx int, src domain.ApplicationStatus) uint8 {
		return src.ToUint8()
	})
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:          app.ID,
		SN:          app.SN,
		JobId:       app.JobID,
		CandidateId: app.CandidateID,
		Uid:         app.Uid,
		Status:      app.Status.ToUint8(),
		ResumeURL:   app.ResumeURL,
		Version:     app.Version,
	}
}

func (r *applicationRepository) toDomain(entity dao.Application) domain.Application {
	return domain.Application{
		ID:          entity.Id,
		SN:          entity.SN,
		JobID:       entity.JobId,
		CandidateID: entity.CandidateId,
		Uid:         entity.Uid,
		Status:      domain.ApplicationStatus(entity.Status),
		ResumeURL:   entity.ResumeURL,
		Version:     entity.Version,
		Ctime:       entity.Ctime,
		Utime:       entity.Utime,
	}
}

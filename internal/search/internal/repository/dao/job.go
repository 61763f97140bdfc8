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

package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const (
	JobIndexName = "job_index"

	// 已发布的岗位才能被搜到
	publishedStatus = 2
)

type Job struct {
	Id        int64  `json:"id"`
	CompanyId int64  `json:"company_id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Location  string `json:"location"`
	SalaryMin int64  `json:"salary_min"`
	SalaryMax int64  `json:"salary_max"`
	Status    uint8  `json:"status"`
	Utime     int64  `json:"utime"`
}

type JobElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewJobElasticDAO(client *elastic.Client) JobDAO {
	return &JobElasticDAO{
		client: client,
		index:  JobIndexName,
	}
}

func (j *JobElasticDAO) SearchJob(ctx context.Context, offset, limit int, keywords string) ([]Job, error) {
	query := elastic.NewBoolQuery().
		Must(elastic.NewTermQuery("status", publishedStatus)).
		Must(elastic.NewBoolQuery().Should(
			elastic.NewMatchQuery("title", keywords).Boost(3),
			elastic.NewMatchQuery("desc", keywords),
			elastic.NewMatchQuery("location", keywords).Boost(2),
		))
	resp, err := j.client.Search(j.index).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Job, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Job
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}

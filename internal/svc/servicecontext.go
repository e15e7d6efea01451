// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/joeblew999/templateforge/internal/config"
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/worker"
	"github.com/joeblew999/templateforge/pkg/forge"
	"github.com/joeblew999/templateforge/pkg/queue"
	"github.com/joeblew999/templateforge/pkg/skin"
)

type ServiceContext struct {
	Config    config.Config
	Queue     *queue.Queue
	Worker    *worker.Engine
	Generator *forge.Generator

	ScoredTemplatesModel model.ScoredTemplatesModel
	ScoreJobsModel       model.ScoreJobsModel
	JobEventsModel       model.JobEventsModel
}

// NewServiceContext wires the models, queue and worker over one database.
func NewServiceContext(c config.Config, conn sqlx.SqlConn, q *queue.Queue) (*ServiceContext, error) {
	skins := skin.Builtin()
	if c.Skins.File != "" {
		var err error
		if skins, err = skin.LoadFile(c.Skins.File, skins); err != nil {
			return nil, fmt.Errorf("load skins: %w", err)
		}
	}

	jobs := model.NewScoreJobsModel(conn)
	results := model.NewScoredTemplatesModel(conn)

	engine := worker.NewEngine(q, jobs, results, worker.Config{
		MaxAttempts: c.Queue.MaxAttempts,
		RateLimit:   c.Worker.RateLimit,
	})

	return &ServiceContext{
		Config:               c,
		Queue:                q,
		Worker:               engine,
		Generator:            forge.NewGenerator(nil, skins),
		ScoredTemplatesModel: results,
		ScoreJobsModel:       jobs,
		JobEventsModel:       model.NewJobEventsModel(conn),
	}, nil
}

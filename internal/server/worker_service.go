package server

import "github.com/joeblew999/templateforge/internal/worker"

// workerService adapts worker.Engine to the service.Service interface.
type workerService struct {
	engine  *worker.Engine
	workers int
}

func newWorkerService(engine *worker.Engine, workers int) *workerService {
	return &workerService{engine: engine, workers: workers}
}

func (s *workerService) Start() {
	s.engine.Start(s.workers)
}

func (s *workerService) Stop() {
	s.engine.Stop()
}

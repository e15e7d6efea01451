// Package server assembles the API, UI, MCP endpoint and scoring worker
// into one go-zero service group.
package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"

	"github.com/joeblew999/templateforge/internal/config"
	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/handler"
	"github.com/joeblew999/templateforge/internal/mcp"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/ui"
	"github.com/joeblew999/templateforge/pkg/db"
	"github.com/joeblew999/templateforge/pkg/queue"
)

// Server wraps the API, UI and worker services.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec/GaugeVec to record)
	prometheus.Enable()

	database, err := db.Open(c.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn := database.SqlConn()
	events, err := queue.NewEventRecorder(conn)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create event recorder: %w", err)
	}

	scoreQueue, err := queue.NewQueue(database.DB, c.Queue.Name, events)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}

	svcCtx, err := svc.NewServiceContext(c, conn, scoreQueue)
	if err != nil {
		database.Close()
		return nil, err
	}

	// Create UI rest server (Datastar web UI) with CORS
	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	uiHandlers := ui.NewHandlers(svcCtx)
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	// Create API rest server (goctl-generated JSON REST API) with CORS
	apiServer, err := rest.NewServer(c.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	handler.RegisterHandlers(apiServer, svcCtx)

	// Expose Prometheus metrics endpoint
	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	// Streamable MCP endpoint; sessions outlive the default request timeout
	mcpServer := mcp.NewServer(svcCtx.Generator, svcCtx.ScoredTemplatesModel)
	mcpHandler := mcpServer.Handler()
	var mcpRoutes []rest.Route
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		mcpRoutes = append(mcpRoutes, rest.Route{Method: method, Path: "/mcp", Handler: mcpHandler.ServeHTTP})
	}
	apiServer.AddRoutes(mcpRoutes, rest.WithTimeout(0))

	// Register cleanup via proc shutdown listeners
	proc.AddShutdownListener(func() {
		logx.Info("Flushing job events")
		events.Flush()
	})
	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})

	// Build service group: worker + UI + API (stopped in reverse order)
	group := service.NewServiceGroup()
	group.Add(newWorkerService(svcCtx.Worker, c.Worker.Workers))
	group.Add(uiServer)
	group.Add(apiServer)

	logx.Infow("templateforge server configured",
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.Host, c.Port)),
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/mcp", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("database", c.Database.Path),
		logx.Field("workers", c.Worker.Workers),
		logx.Field("skins", svcCtx.Generator.Skins.Len()),
	)
	logx.Infof("To add to Claude: claude mcp add --transport http templateforge http://localhost:%d/mcp", c.Port)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}

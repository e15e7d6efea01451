// Package svctest builds service contexts over a throwaway database.
package svctest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/internal/config"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/pkg/db"
	"github.com/joeblew999/templateforge/pkg/queue"
)

// New returns a service context whose worker is not started. Jobs can be
// processed with svcCtx.Worker.Drain.
func New(t *testing.T) *svc.ServiceContext {
	t.Helper()

	d, err := db.Open(filepath.Join(t.TempDir(), "forge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	events, err := queue.NewEventRecorder(d.SqlConn())
	require.NoError(t, err)
	q, err := queue.NewQueue(d.DB, "score", events)
	require.NoError(t, err)

	var c config.Config
	c.Queue.MaxAttempts = queue.DefaultMaxAttempts

	svcCtx, err := svc.NewServiceContext(c, d.SqlConn(), q)
	require.NoError(t, err)
	t.Cleanup(events.Flush)
	return svcCtx
}

package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/internal/errorx"
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/svc/svctest"
	"github.com/joeblew999/templateforge/internal/types"
)

const sample = `<!DOCTYPE html><html lang="en"><head><meta name="viewport" content="width=device-width"></head>` +
	`<body><table role="presentation"><tr><td><h1>{{headline}}</h1></td></tr></table></body></html>`

func TestSubmitAndGetJob(t *testing.T) {
	ctx := context.Background()
	svcCtx := svctest.New(t)

	submitted, err := NewSubmitJobLogic(ctx, svcCtx).SubmitJob(&types.SubmitJobRequest{
		Type:    "welcome",
		Html:    sample,
		Autofix: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobPending, submitted.Status)

	pending, err := NewGetJobLogic(ctx, svcCtx).GetJob(&types.GetJobRequest{Id: submitted.Id})
	require.NoError(t, err)
	assert.Equal(t, model.JobPending, pending.Status)
	assert.True(t, pending.Autofix)
	assert.Nil(t, pending.Result)

	n, err := svcCtx.Worker.Drain(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	svcCtx.Queue.Events.Flush()

	done, err := NewGetJobLogic(ctx, svcCtx).GetJob(&types.GetJobRequest{Id: submitted.Id})
	require.NoError(t, err)
	assert.Equal(t, model.JobDone, done.Status)
	assert.Equal(t, int64(1), done.Attempts)
	require.NotNil(t, done.Result)
	assert.Equal(t, submitted.Id, done.Result.JobId)
	assert.NotEmpty(t, done.Result.Grade)
	assert.NotEmpty(t, done.Events)
}

func TestGetJobNotFound(t *testing.T) {
	_, err := NewGetJobLogic(context.Background(), svctest.New(t)).GetJob(&types.GetJobRequest{Id: "missing"})

	var codeErr *errorx.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, 404, codeErr.Code)
}

func TestSubmitJobRequiresHTML(t *testing.T) {
	_, err := NewSubmitJobLogic(context.Background(), svctest.New(t)).SubmitJob(&types.SubmitJobRequest{})

	var codeErr *errorx.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, 400, codeErr.Code)
}

package score

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/internal/svc/svctest"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/pkg/autofix"
)

const sample = `<!DOCTYPE html><html><head><meta name="viewport" content="width=device-width"></head>` +
	`<body><table><tr><td><img src="a.png"><h1>{{headline}}</h1></td></tr></table></body></html>`

func TestScoreTemplate(t *testing.T) {
	ctx := context.Background()
	svcCtx := svctest.New(t)

	resp, err := NewScoreTemplateLogic(ctx, svcCtx).ScoreTemplate(&types.ScoreRequest{Html: sample})
	require.NoError(t, err)
	assert.Empty(t, resp.Id)
	assert.False(t, resp.AutoFixed)
	assert.Empty(t, resp.Html)
	assert.Equal(t, []string{}, resp.AppliedFixes)
	assert.GreaterOrEqual(t, resp.Score.Total, 0)
	assert.LessOrEqual(t, resp.Score.Total, 100)
	assert.NotEmpty(t, resp.Score.Grade)
}

func TestScoreTemplateFixAndStore(t *testing.T) {
	ctx := context.Background()
	svcCtx := svctest.New(t)

	resp, err := NewScoreTemplateLogic(ctx, svcCtx).ScoreTemplate(&types.ScoreRequest{
		Type:    "welcome",
		Html:    sample,
		Autofix: true,
		Store:   true,
	})
	require.NoError(t, err)
	assert.True(t, resp.AutoFixed)
	assert.Contains(t, resp.Html, `role="presentation"`)
	assert.Contains(t, resp.AppliedFixes, autofix.RuleTablePresentation)
	require.NotEmpty(t, resp.Id)

	row, err := svcCtx.ScoredTemplatesModel.FindOne(ctx, resp.Id)
	require.NoError(t, err)
	assert.Equal(t, "welcome", row.Type)
	assert.Equal(t, int64(resp.Score.Total), row.Total)
}

func TestEmptyHTML(t *testing.T) {
	ctx := context.Background()
	svcCtx := svctest.New(t)

	t.Run("score is the zero record", func(t *testing.T) {
		resp, err := NewScoreTemplateLogic(ctx, svcCtx).ScoreTemplate(&types.ScoreRequest{Autofix: true})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Score.Total)
		assert.Equal(t, "F", resp.Score.Grade)
		assert.Equal(t, []string{"No HTML content"}, resp.Score.Deductions)
		assert.True(t, resp.Score.ShouldDrop)
		assert.False(t, resp.AutoFixed)
		assert.Equal(t, []string{}, resp.AppliedFixes)
	})

	t.Run("validate reports no content", func(t *testing.T) {
		resp, err := NewValidateTemplateLogic(ctx, svcCtx).ValidateTemplate(&types.ValidateRequest{})
		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Equal(t, []string{"Template has no HTML content"}, resp.Errors)
	})

	t.Run("autofix returns it unchanged", func(t *testing.T) {
		resp, err := NewAutofixTemplateLogic(ctx, svcCtx).AutofixTemplate(&types.AutofixRequest{})
		require.NoError(t, err)
		assert.Equal(t, "", resp.Html)
		assert.False(t, resp.Changed)
		assert.Equal(t, []string{}, resp.Applied)
	})
}

func TestValidateTemplate(t *testing.T) {
	ctx := context.Background()
	svcCtx := svctest.New(t)

	resp, err := NewValidateTemplateLogic(ctx, svcCtx).ValidateTemplate(&types.ValidateRequest{
		Type: "welcome",
		Html: "<html><body><div></body></html>",
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)
	assert.Equal(t, "welcome", resp.TemplateType)
}

func TestAutofixTemplate(t *testing.T) {
	ctx := context.Background()
	l := NewAutofixTemplateLogic(ctx, svctest.New(t))

	first, err := l.AutofixTemplate(&types.AutofixRequest{Html: sample})
	require.NoError(t, err)
	assert.True(t, first.Changed)
	assert.Contains(t, first.Html, `alt=""`)

	second, err := l.AutofixTemplate(&types.AutofixRequest{Html: first.Html})
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, []string{}, second.Applied)
	assert.Equal(t, first.Html, second.Html)
}

package ui

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/pathvar"

	"github.com/joeblew999/templateforge/internal/logic/score"
	"github.com/joeblew999/templateforge/internal/logic/stats"
	"github.com/joeblew999/templateforge/internal/logic/template"
	"github.com/joeblew999/templateforge/internal/svc"
	"github.com/joeblew999/templateforge/internal/types"
)

// Handlers provides HTTP handlers for the UI. They reuse the API logic so
// both surfaces report the same numbers.
type Handlers struct {
	svcCtx *svc.ServiceContext
}

// NewHandlers creates new UI handlers.
func NewHandlers(svcCtx *svc.ServiceContext) *Handlers {
	return &Handlers{svcCtx: svcCtx}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleDashboard},
		{Method: http.MethodGet, Path: "/gallery", Handler: h.handleGallery},
		{Method: http.MethodGet, Path: "/scored", Handler: h.handleScored},
		{Method: http.MethodGet, Path: "/score", Handler: h.handleScorePage},
		{Method: http.MethodPost, Path: "/api/score", Handler: h.handleScore},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/stats", Handler: h.handleStats},
		{Method: http.MethodGet, Path: "/api/scored", Handler: h.handleScoredAPI},
		{Method: http.MethodGet, Path: "/api/preview/:type", Handler: h.handlePreview},
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Dashboard().Render(w); err != nil {
		logx.Errorf("render dashboard: %v", err)
	}
}

func (h *Handlers) handleGallery(w http.ResponseWriter, r *http.Request) {
	gen := h.svcCtx.Generator
	list := gen.Registry.List()
	infos := make([]TypeInfo, 0, len(list))
	for _, t := range list {
		infos = append(infos, TypeInfo{ID: t.ID, Name: t.Name, Description: t.Description})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := GalleryPage(infos, gen.Skins.Names()).Render(w); err != nil {
		logx.Errorf("render gallery: %v", err)
	}
}

func (h *Handlers) handleScored(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ScoredPage().Render(w); err != nil {
		logx.Errorf("render scored page: %v", err)
	}
}

func (h *Handlers) handleScorePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ScorePage().Render(w); err != nil {
		logx.Errorf("render score page: %v", err)
	}
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := stats.NewGetStatsLogic(r.Context(), h.svcCtx).GetStats()
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"grades":  resp.Grades,
		"jobs":    resp.Jobs,
		"average": resp.Average,
		"scored":  resp.Scored,
		"loading": false,
	})
}

func (h *Handlers) handleScoredAPI(w http.ResponseWriter, r *http.Request) {
	grade := r.URL.Query().Get("grade")

	resp, err := template.NewListTemplatesLogic(r.Context(), h.svcCtx).ListTemplates(&types.ListTemplatesRequest{
		Grade: grade,
		Limit: 50,
	})
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementf(`<div id="scored-items">%s</div>`, renderScoredItems(resp.Templates)); err != nil {
		logx.Errorf("datastar patch scored items: %v", err)
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handlePreview(w http.ResponseWriter, r *http.Request) {
	typeID := pathvar.Vars(r)["type"]
	if typeID == "" {
		h.sendDatastarError(w, r, nil)
		return
	}

	resp, err := template.NewGenerateTemplateLogic(r.Context(), h.svcCtx).GenerateTemplate(&types.GenerateRequest{
		Type: typeID,
		Skin: r.URL.Query().Get("skin"),
	})
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"previewHtml": resp.Html,
		"total":       resp.Score.Total,
		"grade":       resp.Score.Grade,
		"deductions":  resp.Score.Deductions,
		"loading":     false,
	})
}

func (h *Handlers) handleScore(w http.ResponseWriter, r *http.Request) {
	var signals struct {
		HTML    string `json:"html"`
		Autofix bool   `json:"autofix"`
		Store   bool   `json:"store"`
	}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"scoring": false,
			"result":  "Error: Invalid request",
		})
		return
	}

	resp, err := score.NewScoreTemplateLogic(r.Context(), h.svcCtx).ScoreTemplate(&types.ScoreRequest{
		Html:    signals.HTML,
		Autofix: signals.Autofix,
		Store:   signals.Store,
	})
	if err != nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"scoring": false,
			"result":  "Error: " + err.Error(),
		})
		return
	}

	result := fmt.Sprintf("Scored %d (%s)", resp.Score.Total, resp.Score.Grade)
	if resp.Id != "" {
		result += ", stored as " + resp.Id
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"scoring":    false,
		"total":      resp.Score.Total,
		"grade":      resp.Score.Grade,
		"deductions": resp.Score.Deductions,
		"fixes":      resp.AppliedFixes,
		"fixedHtml":  resp.Html,
		"result":     result,
	})
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"loading": false,
		"error":   msg,
	})
}

func renderScoredItems(items []types.ScoredSummary) string {
	if len(items) == 0 {
		return `<p class="hint" style="padding:2rem;text-align:center;">No scored templates yet</p>`
	}

	const th = `<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">%s</th>`

	var b strings.Builder
	b.WriteString(`<table style="width:100%;border-collapse:collapse;">`)
	b.WriteString(`<thead><tr>`)
	for _, col := range []string{"Type", "Skin", "Score", "Grade", "Valid", "Created"} {
		fmt.Fprintf(&b, th, col)
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, item := range items {
		valid := "yes"
		if !item.Valid {
			valid = "no"
		}
		label := item.Type
		if label == "" {
			label = item.Id
		}

		b.WriteString(`<tr style="border-bottom:1px solid var(--border);">`)
		fmt.Fprintf(&b, `<td style="padding:0.75rem 1rem;font-weight:500;">%s</td>`, html.EscapeString(label))
		fmt.Fprintf(&b, `<td style="padding:0.75rem 1rem;font-size:0.875rem;">%s</td>`, html.EscapeString(item.Skin))
		fmt.Fprintf(&b, `<td style="padding:0.75rem 1rem;">%d</td>`, item.Total)
		fmt.Fprintf(&b, `<td style="padding:0.75rem 1rem;"><span class="grade-%s" style="font-weight:600;">%s</span></td>`,
			html.EscapeString(item.Grade), html.EscapeString(item.Grade))
		fmt.Fprintf(&b, `<td style="padding:0.75rem 1rem;font-size:0.875rem;">%s</td>`, valid)
		fmt.Fprintf(&b, `<td style="padding:0.75rem 1rem;font-size:0.875rem;color:var(--text-muted);">%s</td>`, html.EscapeString(item.CreatedAt))
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

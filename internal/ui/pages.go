// Package ui provides the Datastar-based web UI for templateforge.
package ui

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"
)

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("templateforge")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Dashboard")),
					h.A(h.Href("/gallery"), g.Text("Gallery")),
					h.A(h.Href("/scored"), g.Text("Scored")),
					h.A(h.Href("/score"), g.Text("Score")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("templateforge - email template scoring"),
			),
		),
	)
}

// Dashboard renders grade and job counts, refreshed every five seconds.
func Dashboard() g.Node {
	return Layout("Dashboard - templateforge",
		data.Signals(map[string]any{
			"grades":  map[string]int{},
			"jobs":    map[string]int{},
			"average": 0,
			"scored":  0,
			"loading": true,
		}),
		data.Init("@get('/api/stats')"),
		data.OnInterval("@get('/api/stats')", data.ModifierDuration, data.Duration(5*time.Second)),

		h.H1(g.Text("Scoring Dashboard")),

		h.Div(h.Class("section"),
			h.H2(g.Text("Grades")),
			h.Div(h.Class("stats-grid"),
				StatCard("grades", "A", "A (85+)"),
				StatCard("grades", "B", "B (75-84)"),
				StatCard("grades", "C", "C (65-74)"),
				StatCard("grades", "F", "F (<65)"),
			),
		),

		h.Div(h.Class("section"),
			h.H2(g.Text("Jobs")),
			h.Div(h.Class("stats-grid"),
				StatCard("jobs", "pending", "Pending"),
				StatCard("jobs", "processing", "Processing"),
				StatCard("jobs", "done", "Done"),
				StatCard("jobs", "failed", "Failed"),
			),
		),

		h.Div(h.Class("section"),
			h.H2(g.Text("Overall")),
			h.Div(h.Class("stats-grid"),
				h.Div(h.Class("stat-card"),
					h.Div(h.Class("stat-value"), data.Text("$scored")),
					h.Div(h.Class("stat-label"), g.Text("Scored templates")),
				),
				h.Div(h.Class("stat-card"),
					h.Div(h.Class("stat-value"), data.Text("Math.round($average)")),
					h.Div(h.Class("stat-label"), g.Text("Average score")),
				),
			),
			h.Div(
				data.Show("$loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading..."),
			),
		),
	)
}

// StatCard renders one count from a signal map.
func StatCard(group, key, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), data.Text("$"+group+"."+key+" || 0")),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

// GalleryPage lists template types; selecting one renders and scores it in
// the chosen skin.
func GalleryPage(types []TypeInfo, skins []string) g.Node {
	var typeNodes []g.Node
	for _, t := range types {
		id := t.ID
		typeNodes = append(typeNodes, h.Div(h.Class("template-item"),
			data.On("click", "$selected = '"+id+"'; $loading = true; @get('/api/preview/"+id+"?skin=' + $skin)"),
			data.Class("active", "$selected === '"+id+"'"),
			h.H3(g.Text(t.Name)),
			h.P(g.Text(t.Description)),
		))
	}

	var skinOptions []g.Node
	for _, s := range skins {
		skinOptions = append(skinOptions, h.Option(h.Value(s), g.Text(s)))
	}

	return Layout("Gallery - templateforge",
		data.Signals(map[string]any{
			"selected":    "",
			"skin":        firstOr(skins, ""),
			"previewHtml": "",
			"total":       0,
			"grade":       "",
			"deductions":  []string{},
			"loading":     false,
		}),

		h.H1(g.Text("Template Gallery")),

		h.Div(h.Class("filter-bar"),
			h.Label(h.For("skin"), g.Text("Skin ")),
			h.Select(h.ID("skin"), data.Bind("skin"),
				data.On("change", "$selected && @get('/api/preview/' + $selected + '?skin=' + $skin)"),
				g.Group(skinOptions),
			),
		),

		h.Div(h.Class("templates-grid"),
			h.Div(h.Class("template-list"),
				h.H2(g.Text("Template Types")),
				g.Group(typeNodes),
			),

			h.Div(h.Class("preview-panel"),
				h.H2(g.Text("Preview")),
				h.Div(
					data.Show("$loading"),
					h.Span(h.Class("loading-spinner")),
					g.Text(" Rendering..."),
				),
				h.Div(
					data.Show("!$loading && $previewHtml"),
					ScoreCard(),
					h.IFrame(
						h.ID("preview-frame"),
						data.Attr("srcdoc", "$previewHtml"),
						h.StyleAttr("width: 100%; height: 600px; border: 1px solid #ddd; border-radius: 8px;"),
					),
				),
				h.Div(
					data.Show("!$loading && !$previewHtml"),
					h.P(h.Class("hint"), g.Text("Select a template type to preview")),
				),
			),
		),
	)
}

// ScoreCard shows the total, grade and deductions signals.
func ScoreCard() g.Node {
	return h.Div(h.Class("section"),
		h.Div(h.Class("score-total"),
			data.Class("grade-A", "$grade === 'A'"),
			data.Class("grade-B", "$grade === 'B'"),
			data.Class("grade-C", "$grade === 'C'"),
			data.Class("grade-F", "$grade === 'F'"),
			data.Text("$total + ' ' + $grade"),
		),
		h.P(h.Class("deductions"),
			data.Show("$deductions.length > 0"),
			data.Text("$deductions.join(' | ')"),
		),
	)
}

// ScoredPage lists stored results with a grade filter.
func ScoredPage() g.Node {
	return Layout("Scored - templateforge",
		data.Signals(map[string]any{
			"filter":  "all",
			"loading": true,
		}),
		data.Init("@get('/api/scored')"),

		h.H1(g.Text("Scored Templates")),

		h.Div(h.Class("filter-bar"),
			gradeFilter("all", "All"),
			gradeFilter("A", "A"),
			gradeFilter("B", "B"),
			gradeFilter("C", "C"),
			gradeFilter("F", "F"),
		),

		h.Div(h.Class("refresh-bar"),
			data.OnInterval("@get('/api/scored?grade=' + $filter)", data.ModifierDuration, data.Duration(5*time.Second)),
			g.Text("Auto-refresh: 5s"),
		),

		h.Div(h.Class("panel"),
			data.Show("$loading"),
			h.Div(h.Class("loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading..."),
			),
		),
		h.Div(h.ID("scored-items"),
			data.Show("!$loading"),
		),
	)
}

func gradeFilter(grade, label string) g.Node {
	return h.Button(
		data.On("click", "$filter = '"+grade+"'; @get('/api/scored?grade="+grade+"')"),
		data.Class("active", "$filter === '"+grade+"'"),
		g.Text(label),
	)
}

// ScorePage lets a user paste markup and score it, optionally auto-fixing.
func ScorePage() g.Node {
	return Layout("Score - templateforge",
		data.Signals(map[string]any{
			"html":       "",
			"autofix":    true,
			"store":      false,
			"scoring":    false,
			"total":      0,
			"grade":      "",
			"deductions": []string{},
			"fixes":      []string{},
			"fixedHtml":  "",
			"result":     "",
		}),

		h.H1(g.Text("Score a Template")),

		h.Form(h.Class("panel score-form"),
			data.On("submit", "event.preventDefault(); $scoring = true; @post('/api/score')"),

			h.Div(h.Class("form-group"),
				h.Label(h.For("html"), g.Text("HTML")),
				h.Textarea(h.ID("html"), data.Bind("html"),
					h.Placeholder("<!DOCTYPE html>..."),
					h.Rows("14"),
				),
			),

			h.Div(h.Class("form-group"),
				h.Label(
					h.Input(h.Type("checkbox"), data.Bind("autofix")),
					g.Text(" Auto-fix before scoring"),
				),
				h.Label(
					h.Input(h.Type("checkbox"), data.Bind("store")),
					g.Text(" Store result"),
				),
			),

			h.Button(h.Type("submit"),
				data.Attr("disabled", "$scoring"),
				h.Span(data.Show("!$scoring"), g.Text("Score")),
				h.Span(data.Show("$scoring"),
					h.Span(h.Class("loading-spinner")),
					g.Text(" Scoring..."),
				),
			),

			h.Div(h.Class("result"),
				data.Show("$result"),
				data.Text("$result"),
			),
		),

		h.Div(data.Show("$grade"),
			ScoreCard(),
			h.P(h.Class("hint"), data.Show("$fixes.length > 0"), data.Text("'Applied fixes: ' + $fixes.join(', ')")),
		),
	)
}

// TypeInfo holds template type metadata for the UI.
type TypeInfo struct {
	ID          string
	Name        string
	Description string
}

func firstOr(s []string, def string) string {
	if len(s) == 0 {
		return def
	}
	return s[0]
}

// Package mcp exposes scoring, validation, auto-fix and generation as
// Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/internal/worker"
	"github.com/joeblew999/templateforge/pkg/autofix"
	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/forge"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
	"github.com/joeblew999/templateforge/pkg/score"
)

// Version is reported to MCP clients.
var Version = "dev"

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server

	gen     *forge.Generator
	results model.ScoredTemplatesModel
}

// NewServer registers every tool. results may be nil, in which case scores
// cannot be stored and list_scored_templates is not offered.
func NewServer(gen *forge.Generator, results model.ScoredTemplatesModel) *Server {
	if gen == nil {
		gen = forge.NewGenerator(nil, nil)
	}
	s := &Server{gen: gen, results: results}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "templateforge", Version: Version},
		nil,
	)
	s.registerTools()
	return s
}

// Handler serves the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s.MCPServer
	}, nil)
}

// RunStdio serves a single client over stdin/stdout until ctx ends.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score_template",
		Description: "Score an HTML email template from 0 to 100 across six dimensions and grade it A, B, C or F. Optionally auto-fix it first.",
	}, s.handleScore)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "validate_template",
		Description: "Validate HTML email markup: tag balance, DOCTYPE, viewport and email client best practices.",
	}, s.handleValidate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "autofix_template",
		Description: "Apply safe fixes to an HTML email: empty alt on images, role=presentation on tables and lang on the html element.",
	}, s.handleAutofix)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_template",
		Description: "Generate an email template of a registered type in a design skin, optionally as a layout variant (1-3).",
	}, s.handleGenerate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_template_types",
		Description: "List registered template types with their section composition.",
	}, s.handleListTypes)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_skins",
		Description: "List available design skins and their brand colors.",
	}, s.handleListSkins)

	if s.results != nil {
		sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
			Name:        "list_scored_templates",
			Description: "List stored scored templates, newest first, optionally filtered by grade.",
		}, s.handleListScored)
	}
}

type scoreInput struct {
	HTML    string `json:"html" jsonschema:"complete HTML email document"`
	Type    string `json:"type,omitempty" jsonschema:"template type label used in error messages"`
	Autofix bool   `json:"autofix,omitempty" jsonschema:"apply auto-fixes before scoring"`
	Store   bool   `json:"store,omitempty" jsonschema:"persist the scored result"`
}

type validateInput struct {
	HTML string `json:"html" jsonschema:"complete HTML email document"`
	Type string `json:"type,omitempty" jsonschema:"template type label"`
}

type autofixInput struct {
	HTML string `json:"html" jsonschema:"complete HTML email document"`
}

type generateInput struct {
	Type    string `json:"type" jsonschema:"template type id, see list_template_types"`
	Skin    string `json:"skin,omitempty" jsonschema:"skin id, unknown skins fall back to the default"`
	Variant int    `json:"variant,omitempty" jsonschema:"layout variant 1-3, 0 for the base layout"`
}

type emptyInput struct{}

type listScoredInput struct {
	Grade string `json:"grade,omitempty" jsonschema:"A, B, C, F or all"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum results (default 50)"`
}

func (s *Server) handleScore(ctx context.Context, _ *sdkmcp.CallToolRequest, in scoreInput) (*sdkmcp.CallToolResult, types.ScoreResponse, error) {
	ev := worker.Evaluate(document.Document{Type: in.Type, HTML: in.HTML}, in.Autofix)
	out := types.ScoreResponse{
		Score:         shared.ScoreCard(ev.Score),
		Validation:    shared.Validation(ev.Validation),
		AutoFixed:     ev.Document.AutoFixed,
		AppliedFixes:  orEmpty(ev.AppliedFixes),
		ContentHash:   ev.ContentHash,
		StructureHash: ev.StructureHash,
	}
	if ev.Document.AutoFixed {
		out.Html = ev.Document.HTML
	}

	if in.Store {
		if s.results == nil {
			return nil, types.ScoreResponse{}, errors.New("storage is not configured")
		}
		id := uuid.New().String()
		if _, err := s.results.Insert(ctx, ev.Row(id, "")); err != nil {
			return nil, types.ScoreResponse{}, fmt.Errorf("store score: %w", err)
		}
		out.Id = id
	}

	logx.WithContext(ctx).Infow("MCP score_template",
		logx.Field("total", ev.Score.Total),
		logx.Field("grade", string(ev.Score.Grade)),
	)
	return nil, out, nil
}

func (s *Server) handleValidate(_ context.Context, _ *sdkmcp.CallToolRequest, in validateInput) (*sdkmcp.CallToolResult, types.Validation, error) {
	return nil, shared.Validation(htmlcheck.Validate(document.Document{Type: in.Type, HTML: in.HTML})), nil
}

func (s *Server) handleAutofix(_ context.Context, _ *sdkmcp.CallToolRequest, in autofixInput) (*sdkmcp.CallToolResult, types.AutofixResponse, error) {
	fixed, applied := autofix.Apply(document.Document{HTML: in.HTML})
	return nil, types.AutofixResponse{
		Html:    fixed.HTML,
		Applied: orEmpty(applied),
		Changed: fixed.HTML != in.HTML,
	}, nil
}

func (s *Server) handleGenerate(_ context.Context, _ *sdkmcp.CallToolRequest, in generateInput) (*sdkmcp.CallToolResult, types.GenerateResponse, error) {
	var (
		tpl forge.Template
		err error
	)
	if in.Variant == 0 {
		tpl, err = s.gen.Generate(in.Type, in.Skin)
	} else {
		tpl, err = s.gen.LayoutVariant(in.Type, in.Variant, in.Skin)
	}
	if err != nil {
		return nil, types.GenerateResponse{}, err
	}

	ev := worker.Evaluate(tpl.Document, false)
	return nil, types.GenerateResponse{
		Id:       tpl.ID,
		Type:     tpl.Type,
		BaseType: tpl.BaseType,
		Skin:     tpl.Skin,
		Sections: orEmpty(tpl.Sections),
		Html:     tpl.HTML,
		Score:    shared.ScoreCard(ev.Score),
		Valid:    shared.Validation(ev.Validation),
	}, nil
}

func (s *Server) handleListTypes(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, types.ListTypesResponse, error) {
	list := s.gen.Registry.List()
	out := types.ListTypesResponse{Types: make([]types.TemplateTypeInfo, 0, len(list))}
	for _, t := range list {
		out.Types = append(out.Types, shared.TemplateType(t))
	}
	out.Total = len(out.Types)
	return nil, out, nil
}

func (s *Server) handleListSkins(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, types.ListSkinsResponse, error) {
	all := s.gen.Skins.All()
	out := types.ListSkinsResponse{Skins: make([]types.SkinInfo, 0, len(all))}
	for _, sk := range all {
		out.Skins = append(out.Skins, shared.Skin(sk))
	}
	out.Total = len(out.Skins)
	return nil, out, nil
}

func (s *Server) handleListScored(ctx context.Context, _ *sdkmcp.CallToolRequest, in listScoredInput) (*sdkmcp.CallToolResult, types.ListTemplatesResponse, error) {
	if in.Grade != "" && in.Grade != "all" {
		if _, ok := score.ParseGrade(in.Grade); !ok {
			return nil, types.ListTemplatesResponse{}, fmt.Errorf("unknown grade %q", in.Grade)
		}
	}

	rows, err := s.results.ListByGrade(ctx, in.Grade, shared.Limit(in.Limit))
	if err != nil {
		return nil, types.ListTemplatesResponse{}, fmt.Errorf("list templates: %w", err)
	}

	out := types.ListTemplatesResponse{Templates: make([]types.ScoredSummary, 0, len(rows))}
	for _, row := range rows {
		out.Templates = append(out.Templates, shared.Summary(row))
	}
	out.Total = len(out.Templates)
	return nil, out, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

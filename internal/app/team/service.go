package team

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	domain "github.com/preston-bernstein/roster-service/internal/domain/team"
	"github.com/preston-bernstein/roster-service/internal/seed"
)

// mdRenderer leaves raw HTML in descriptions escaped.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Service serves the static team metadata.
type Service struct {
	team domain.Team
}

// NewService builds a Service from the embedded team seed.
func NewService() (*Service, error) {
	t, err := seed.Team()
	if err != nil {
		return nil, err
	}
	return NewServiceFor(t)
}

// NewServiceFor builds a Service around t, rendering its description.
func NewServiceFor(t domain.Team) (*Service, error) {
	html, err := RenderDescription(t.Description)
	if err != nil {
		return nil, err
	}
	t.DescriptionHTML = html
	t.Colors = append([]domain.Color(nil), t.Colors...)
	return &Service{team: t}, nil
}

// Team returns a copy of the team metadata.
func (s *Service) Team() domain.Team {
	if s == nil {
		return domain.Team{}
	}
	t := s.team
	t.Colors = append([]domain.Color(nil), s.team.Colors...)
	return t
}

// RenderDescription converts a markdown description to HTML.
func RenderDescription(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}
	return buf.String(), nil
}

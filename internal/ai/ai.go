// Package ai wraps the generative model used for statement analysis, comment
// moderation and the admin agents.
package ai

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var ErrEmptyResponse = errors.New("empty response from model")

//go:generate mockgen -source=ai.go -destination=generator_mock.go -package=ai
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (*Response, error)
}

type Options struct {
	Temperature     *float32
	MaxOutputTokens int32
	// JSON asks the model for an application/json response body.
	JSON bool
}

type Response struct {
	Text        string
	TotalTokens int32
}

// Temperature is a convenience for building Options literals.
func Temperature(t float32) *float32 {
	return &t
}

var objectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// StripFences removes Markdown code fences (```json ... ```) that models add
// even when told not to.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return strings.Trim(s, "`")
		}

		s = strings.TrimSpace(s[idx+1:])
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// ExtractObject returns the outermost {...} span of the text, or "" when the
// text holds no object.
func ExtractObject(raw string) string {
	return objectPattern.FindString(StripFences(raw))
}

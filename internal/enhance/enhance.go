// internal/enhance/enhance.go
package enhance

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const systemPrompt = "You are an expert coding assistant. Your task is to take the user's code snippet and enhance or optimize it. Provide only the improved code, without any explanations, comments about your changes, or introductory phrases. Just return the raw, improved code."

var (
	// ErrEmptyCode is returned when there is no code to enhance.
	ErrEmptyCode = errors.New("code is required")
	// ErrNotConfigured is returned when no model client is available.
	ErrNotConfigured = errors.New("model API key not configured")
)

var (
	fenceOpen  = regexp.MustCompile("```(?:[a-zA-Z]+)?\n?")
	fenceClose = regexp.MustCompile("\n?```$")
)

// Completer sends one system/user prompt pair to a language model.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service rewrites code snippets through a Completer.
type Service struct {
	completer Completer
}

// NewService returns a service backed by c. A nil c yields a service that
// always fails with ErrNotConfigured.
func NewService(c Completer) *Service {
	return &Service{completer: c}
}

// Enhance returns an improved version of code with any markdown fences
// removed.
func (s *Service) Enhance(ctx context.Context, code string) (string, error) {
	if s == nil || s.completer == nil {
		return "", ErrNotConfigured
	}
	if code == "" {
		return "", ErrEmptyCode
	}
	out, err := s.completer.Complete(ctx, systemPrompt, UserPrompt(code))
	if err != nil {
		return "", fmt.Errorf("enhance code: %w", err)
	}
	return StripFences(out), nil
}

// UserPrompt wraps code in a fenced block.
func UserPrompt(code string) string {
	return "Enhance this code:\n\n```\n" + code + "\n```"
}

// StripFences removes every fence opener, a trailing fence and surrounding
// whitespace.
func StripFences(s string) string {
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

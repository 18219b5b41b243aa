package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPosition is returned for a mesh primitive without vertex positions.
	ErrNoPosition = errors.New("mesh has no POSITION attribute")
	// ErrMissingTexCoords is returned by Report.Check in strict mode when a
	// mesh has no texture coordinates.
	ErrMissingTexCoords = errors.New("mesh has no texture coordinates")
	// ErrDegraded is returned by Report.Check in strict mode for any other
	// fallback substitution.
	ErrDegraded = errors.New("model load degraded")
)

// IssueKind classifies a load degradation.
type IssueKind int

const (
	FallbackDiffuse IssueKind = iota
	FallbackSpecular
	FallbackNormal
	MissingTexCoords
	MissingNormals
	SkippedPrimitive
)

func (k IssueKind) String() string {
	switch k {
	case FallbackDiffuse:
		return "fallback diffuse"
	case FallbackSpecular:
		return "fallback specular"
	case FallbackNormal:
		return "fallback normal"
	case MissingTexCoords:
		return "missing texcoords"
	case MissingNormals:
		return "missing normals"
	case SkippedPrimitive:
		return "skipped primitive"
	default:
		return fmt.Sprintf("issue(%d)", int(k))
	}
}

// Issue is one degradation found while loading a model.
type Issue struct {
	Mesh   string
	Kind   IssueKind
	Detail string
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s: %s", i.Mesh, i.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", i.Mesh, i.Kind, i.Detail)
}

// Report collects the degradations of a load so callers can decide whether
// the result is acceptable.
type Report struct {
	Source string
	Issues []Issue
}

// Add records an issue. Adding to a nil Report is a no-op.
func (r *Report) Add(mesh string, kind IssueKind, detail string) {
	if r == nil {
		return
	}
	r.Issues = append(r.Issues, Issue{Mesh: mesh, Kind: kind, Detail: detail})
}

// Degraded reports whether any fallback was substituted.
func (r *Report) Degraded() bool {
	return r != nil && len(r.Issues) > 0
}

// Has reports whether an issue of the given kind was recorded.
func (r *Report) Has(kind IssueKind) bool {
	if r == nil {
		return false
	}
	for _, is := range r.Issues {
		if is.Kind == kind {
			return true
		}
	}
	return false
}

// Check returns nil unless strict is set and the load was degraded.
func (r *Report) Check(strict bool) error {
	if !strict || !r.Degraded() {
		return nil
	}
	if r.Has(MissingTexCoords) {
		return fmt.Errorf("%s: %w", r.Source, ErrMissingTexCoords)
	}
	return fmt.Errorf("%s: %w: %s", r.Source, ErrDegraded, r)
}

func (r *Report) String() string {
	parts := make([]string, len(r.Issues))
	for i, is := range r.Issues {
		parts[i] = is.String()
	}
	return strings.Join(parts, "; ")
}

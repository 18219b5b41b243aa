// Package levels loads brick layouts.
//
// A layout is a row-major grid of small integers. Rows may differ in length.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cell codes.
const (
	Empty    = 0
	Iron     = 1 // indestructible
	Wood     = 2
	Paper    = 3
	Reserved = 100 // codes at or above this are reserved for special bricks
)

// ErrEmptyLayout is returned for a grid without a single column.
var ErrEmptyLayout = errors.New("levels: layout has no cells")

//go:embed default.yaml
var defaultLevel []byte

// Layout is a jagged brick grid.
type Layout struct {
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

// MaxCols returns the longest row length, counting short rows too.
func (l Layout) MaxCols() int {
	maxCols := 0
	for _, row := range l.Rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	return maxCols
}

// Count returns how many cells hold the given code.
func (l Layout) Count(code int) int {
	n := 0
	for _, row := range l.Rows {
		for _, c := range row {
			if c == code {
				n++
			}
		}
	}
	return n
}

// Bricks returns the number of non-empty cells.
func (l Layout) Bricks() int {
	n := 0
	for _, row := range l.Rows {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Validate rejects grids that would produce a zero-sized play field.
func (l Layout) Validate() error {
	if l.MaxCols() == 0 {
		return ErrEmptyLayout
	}
	return nil
}

// Parse decodes a YAML layout document.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Load reads a layout file. An empty path returns the built-in level.
func Load(path string) (Layout, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Default returns the built-in level.
func Default() Layout {
	l, err := Parse(defaultLevel)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in layout is invalid: %v", err))
	}
	return l
}

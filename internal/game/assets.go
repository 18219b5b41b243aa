package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/config"
	"github.com/Faultbox/breakout3d/internal/engine/model"
	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Default model colors, used for procedural models and as the flat diffuse
// of imported models without a base color texture.
var (
	colorIron       = math.Vec4{0.5, 0.5, 0.5, 1}
	colorWood       = math.Vec4{1, 0.55, 0.1, 1}
	colorPaper      = math.Vec4{0.2, 0.2, 0.8, 1}
	colorPaddle     = math.Vec4{1, 0, 0, 1}
	colorBall       = math.Vec4{0.9, 0.9, 0.9, 1}
	colorBackground = math.Vec4{0.55, 0.4, 0.25, 1}
	colorQuad       = math.Vec4{1, 1, 1, 1}
)

// modelSpec describes one slot of the level's model table.
type modelSpec struct {
	name      string
	path      string
	primitive func() *model.Data
}

// modelSpecs lists the level models in table order: iron, wood, paper,
// paddle, ball, background, quad.
func modelSpecs(a config.AssetsConfig) []modelSpec {
	cube := func(name string, c math.Vec4) func() *model.Data {
		return func() *model.Data { return model.Cube(name, c) }
	}
	return []modelSpec{
		{"iron", a.IronBrick, cube("iron", colorIron)},
		{"wood", a.WoodBrick, cube("wood", colorWood)},
		{"paper", a.PaperBrick, cube("paper", colorPaper)},
		{"paddle", a.Paddle, cube("paddle", colorPaddle)},
		{"ball", a.Ball, func() *model.Data { return model.Sphere("ball", 0.25, 24, 16, colorBall) }},
		{"background", a.Background, func() *model.Data { return model.Plane("background", 10, colorBackground) }},
		{"quad", a.Quad, func() *model.Data { return model.Quad("quad", colorQuad) }},
	}
}

// loadData reads the model of spec from disk, or builds its primitive when
// no path is configured. With strict set a degraded import is an error.
func loadData(spec modelSpec, strict bool) (*model.Data, *model.Report, error) {
	if spec.path == "" {
		data := spec.primitive()
		return data, &model.Report{Source: data.Name}, nil
	}
	data, report, err := model.LoadGLTF(spec.path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s model: %w", spec.name, err)
	}
	if err := report.Check(strict); err != nil {
		return nil, nil, fmt.Errorf("%s model: %w", spec.name, err)
	}
	return data, report, nil
}

// uploadModel loads and uploads one model, logging any degradation.
func uploadModel(spec modelSpec, src model.TextureSource, strict bool) (*model.Model, error) {
	data, report, err := loadData(spec, strict)
	if err != nil {
		return nil, err
	}
	m, err := model.Upload(data, src, report)
	if err != nil {
		return nil, fmt.Errorf("%s model: %w", spec.name, err)
	}
	if err := report.Check(strict); err != nil {
		m.Destroy()
		return nil, fmt.Errorf("%s model: %w", spec.name, err)
	}
	if report.Degraded() {
		logger.Warn("model loaded with fallbacks",
			zap.String("model", spec.name),
			zap.Stringer("report", report))
	}
	return m, nil
}

package model

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// TextureSource resolves images to GPU textures. texture.Cache implements it.
type TextureSource interface {
	Load(path string) (uint32, error)
	LoadBytes(key string, data []byte) (uint32, error)
	Solid(c color.RGBA) (uint32, error)
}

// Flat fallback colors for missing maps.
var (
	fallbackSpecular = color.RGBA{A: 255}
	fallbackNormal   = color.RGBA{R: 128, G: 128, B: 255, A: 255}
)

// Textures are the resolved texture handles of a material.
type Textures struct {
	Diffuse   uint32
	Specular  uint32
	Normal    uint32
	Shininess float32
}

// ResolveTextures loads the maps of mat through src. A map that is absent or
// fails to load is replaced by a flat texture: the base color for diffuse,
// black for specular and an unperturbed normal. Each substitution of a map
// the material asked for is recorded in report.
func ResolveTextures(mesh string, mat Material, src TextureSource, report *Report) (Textures, error) {
	out := Textures{Shininess: mat.Shininess}
	var err error

	out.Diffuse, err = resolve(mesh, mat.Diffuse, toRGBA(mat.BaseColor), FallbackDiffuse, src, report)
	if err != nil {
		return out, err
	}
	out.Specular, err = resolve(mesh, mat.Specular, fallbackSpecular, FallbackSpecular, src, report)
	if err != nil {
		return out, err
	}
	out.Normal, err = resolve(mesh, mat.Normal, fallbackNormal, FallbackNormal, src, report)
	return out, err
}

func resolve(mesh string, ref ImageRef, fallback color.RGBA, kind IssueKind, src TextureSource, report *Report) (uint32, error) {
	if !ref.IsZero() {
		var id uint32
		var err error
		if ref.Data != nil {
			id, err = src.LoadBytes(ref.Key, ref.Data)
		} else {
			id, err = src.Load(ref.Path)
		}
		if err == nil {
			return id, nil
		}
		report.Add(mesh, kind, err.Error())
		logger.Warn("texture fallback",
			zap.String("mesh", mesh),
			zap.Stringer("kind", kind),
			zap.Error(err))
	}
	return src.Solid(fallback)
}

func toRGBA(c math.Vec4) color.RGBA {
	ch := func(f float32) uint8 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

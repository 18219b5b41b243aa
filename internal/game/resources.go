package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/config"
	"github.com/Faultbox/breakout3d/internal/engine/framebuffer"
	"github.com/Faultbox/breakout3d/internal/engine/model"
	"github.com/Faultbox/breakout3d/internal/engine/renderer"
	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/internal/engine/shader/shaders"
	"github.com/Faultbox/breakout3d/internal/engine/shadow"
	"github.com/Faultbox/breakout3d/internal/engine/texture"
	"github.com/Faultbox/breakout3d/internal/game/level"
	"github.com/Faultbox/breakout3d/internal/logger"
)

// gpu owns every GL object the level draws with. Objects are released in
// reverse creation order.
type gpu struct {
	textures *texture.Cache
	programs int
	models   int
	release  []func()
}

func (g *gpu) track(release func()) {
	g.release = append(g.release, release)
}

func (g *gpu) destroy() {
	if g == nil {
		return
	}
	for i := len(g.release) - 1; i >= 0; i-- {
		g.release[i]()
	}
	g.release = nil
}

// newGPU creates the shaders, models and render targets for a level of the
// given drawable size. On error everything created so far is released.
func newGPU(cfg *config.Config, width, height int32) (*gpu, level.Resources, error) {
	g := &gpu{textures: texture.NewCache(texture.GLUploader{})}
	g.track(g.textures.Destroy)
	res, err := g.build(cfg, width, height)
	return settle(g, res, err)
}

// settle hands out g on success and releases it on failure.
func settle(g *gpu, res level.Resources, err error) (*gpu, level.Resources, error) {
	if err != nil {
		g.destroy()
		return nil, level.Resources{}, err
	}
	return g, res, nil
}

func (g *gpu) build(cfg *config.Config, width, height int32) (res level.Resources, err error) {
	compile := func(src shader.Source) (*shader.GLProgram, error) {
		p, err := shader.New(src)
		if err != nil {
			return nil, err
		}
		g.track(p.Destroy)
		g.programs++
		return p, nil
	}
	sources := []struct {
		dst *shader.Program
		src shader.Source
	}{
		{&res.Programs.Lit, shaders.Lit()},
		{&res.Programs.LitInstanced, shaders.LitInstanced()},
		{&res.Programs.Depth, shaders.Depth()},
		{&res.Programs.DepthInstanced, shaders.DepthInstanced()},
		{&res.Programs.CubeDepth, shaders.CubeDepth()},
		{&res.Programs.CubeDepthInstanced, shaders.CubeDepthInstanced()},
		{&res.Programs.Colored, shaders.Colored()},
	}
	for _, s := range sources {
		p, err := compile(s.src)
		if err != nil {
			return res, err
		}
		*s.dst = p
	}
	hdrProgram, err := compile(shaders.HDR())
	if err != nil {
		return res, err
	}

	slots := []*model.Drawable{
		&res.Models.Iron, &res.Models.Wood, &res.Models.Paper,
		&res.Models.Paddle, &res.Models.Ball, &res.Models.Background, &res.Models.Quad,
	}
	for i, spec := range modelSpecs(cfg.Assets) {
		m, err := uploadModel(spec, g.textures, cfg.Assets.Strict)
		if err != nil {
			return res, err
		}
		g.track(m.Destroy)
		g.models++
		*slots[i] = m
	}

	sun, err := shadow.NewMap(cfg.Shadows.SunResolution)
	if err != nil {
		return res, fmt.Errorf("sun shadow map: %w", err)
	}
	g.track(sun.Destroy)

	point, err := shadow.NewCubeMap(cfg.Shadows.PointResolution, cfg.Shadows.FarPlane)
	if err != nil {
		return res, fmt.Errorf("point shadow map: %w", err)
	}
	g.track(point.Destroy)

	hdr, err := framebuffer.New(width, height, framebuffer.HDR)
	if err != nil {
		return res, fmt.Errorf("hdr target: %w", err)
	}
	g.track(hdr.Destroy)

	resolver := renderer.NewResolver(hdrProgram, cfg.Graphics.Exposure)
	g.track(resolver.Destroy)

	res.SunShadow = sun
	res.Point = point
	res.HDR = hdr
	res.Resolver = resolver

	logger.Info("gpu resources ready",
		zap.Int("programs", g.programs),
		zap.Int("models", g.models),
		zap.Int("textures", g.textures.Len()),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return res, nil
}

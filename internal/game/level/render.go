package level

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/internal/engine/shadow"
	"github.com/Faultbox/breakout3d/pkg/math"
)

const cubeNear = 0.1

// Render draws one frame: shadow maps first, then the lit scene into the
// HDR target, then the tone-mapped result to the screen.
func (l *Level) Render() {
	l.submit()

	l.res.SunShadow.Clear()
	l.res.Point.Clear()

	lightSpace := l.frustum.LightSpaceMatrix(l.sun.ViewMatrix())
	faces := shadow.CubeFaceMatrices(l.point.Eye, cubeNear, l.res.Point.FarPlane())

	p := l.res.Programs

	l.sunPass(p.Depth, lightSpace, func(prog shader.Program) { l.queue.Draw(prog) })
	l.pointPass(p.CubeDepth, faces, func(prog shader.Program) { l.queue.Draw(prog) })
	l.sunPass(p.DepthInstanced, lightSpace, l.drawPools)
	l.pointPass(p.CubeDepthInstanced, faces, l.drawPools)

	l.res.HDR.Bind()
	l.res.HDR.Clear(0.5, 0.5, 0.5, 1)

	view := l.camera.ViewMatrix()
	proj := l.camera.Projection(l.aspect)

	p.Lit.Bind()
	l.setLit(p.Lit, view, proj, lightSpace)
	l.queue.Draw(p.Lit)
	l.queue.Clear()
	p.Lit.Unbind()

	p.LitInstanced.Bind()
	l.setLit(p.LitInstanced, view, proj, lightSpace)
	l.drawPools(p.LitInstanced)
	p.LitInstanced.Unbind()

	p.Colored.Bind()
	p.Colored.SetMat4("view", view)
	p.Colored.SetMat4("projection", proj)
	p.Colored.SetFloat("brightness", 1)
	l.coloredQuads.DrawInstances(p.Colored)
	p.Colored.Unbind()

	l.res.HDR.Unbind()
	l.res.Resolver.Resolve(l.res.HDR.ColorTexture())
}

// submit queues the individually placed entities for this frame.
func (l *Level) submit() {
	l.queue.Submit(l.models[l.player.Model], l.player.Matrix())
	l.queue.Submit(l.models[l.ball.Model], l.ball.Matrix())
	l.queue.Submit(l.models[ModelBackground], l.background.Matrix())
}

// drawPools draws every shadow-casting instance pool.
func (l *Level) drawPools(prog shader.Program) {
	l.bricksIron.DrawInstances(prog)
	l.bricksWood.DrawInstances(prog)
	l.bricksPaper.DrawInstances(prog)
	l.particles.DrawInstances(prog)
}

func (l *Level) sunPass(prog shader.Program, lightSpace math.Mat4, draw func(shader.Program)) {
	l.res.SunShadow.Begin()
	prog.Bind()
	prog.SetMat4("lightSpaceMatrix", lightSpace)
	draw(prog)
	prog.Unbind()
	l.res.SunShadow.End()
}

func (l *Level) pointPass(prog shader.Program, faces [6]math.Mat4, draw func(shader.Program)) {
	l.res.Point.Begin()
	prog.Bind()
	for i, m := range faces {
		prog.SetMat4(fmt.Sprintf("shadowMatrices[%d]", i), m)
	}
	prog.SetVec3("lightPos", l.point.Eye)
	prog.SetFloat("farPlane", l.res.Point.FarPlane())
	draw(prog)
	prog.Unbind()
	l.res.Point.End()
}

// setLit sets the camera, light and shadow uniforms of a lit program.
func (l *Level) setLit(prog shader.Program, view, proj, lightSpace math.Mat4) {
	prog.SetMat4("view", view)
	prog.SetMat4("projection", proj)
	prog.SetVec3("cameraPos", l.camera.Position())

	l.sun.Cast("sun[0]", prog)
	prog.SetTexture(gl.TEXTURE_2D, "shadowMap[0]", l.res.SunShadow.Texture())
	prog.SetMat4("lightSpaceMatrix[0]", lightSpace)

	l.point.Cast("pointLights[0]", prog)
	prog.SetTexture(gl.TEXTURE_CUBE_MAP, "cubeDepthMap[0]", l.res.Point.Texture())
	prog.SetFloat("farPlane", l.res.Point.FarPlane())
}

package render

import "github.com/hearthlight/engine2d/math2d"

// Uniforms mirrors the per-frame uniform buffer contents from spec.md
// §4.4 step 2: a view-projection matrix derived from the active camera.
// Ebitengine has no user-visible GPU uniform buffer for 2D drawing, so
// this engine applies the matrix on the CPU while building each sprite's
// quad — the observable pipeline step is identical, only the execution
// unit differs.
type Uniforms struct {
	ViewProjection math2d.Mat4
}

// IdentityUniforms returns the UI pass's uniforms: identity view with a
// pixel-space projection, per spec.md §4.4 step 4. Ebitengine's draw
// target is already addressed in pixel space, so the pixel-space
// projection that step calls for is the identity matrix here — HUD
// sprites are positioned directly in screen pixels.
func IdentityUniforms() Uniforms {
	return Uniforms{ViewProjection: math2d.Identity()}
}

package engine3D

import (
	"carousel3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShaderParameters are the uniform locations of an item shader variant. A
// location is -1 when the variant compiled the uniform out.
type ShaderParameters struct {
	Time        int32
	ScrollSpeed int32
	Distance    int32
	ZoomScale   int32
	Progress    int32
	IsActive    int32
	GrayOverlay int32
}

func ResolveShaderLocations(shader rl.Shader) ShaderParameters {
	return ShaderParameters{
		Time:        rl.GetShaderLocation(shader, "uTime"),
		ScrollSpeed: rl.GetShaderLocation(shader, "uScrollSpeed"),
		Distance:    rl.GetShaderLocation(shader, "uDistance"),
		ZoomScale:   rl.GetShaderLocation(shader, "uZoomScale"),
		Progress:    rl.GetShaderLocation(shader, "uProgress"),
		IsActive:    rl.GetShaderLocation(shader, "uIsActive"),
		GrayOverlay: rl.GetShaderLocation(shader, "uGrayOverlay"),
	}
}

func setFloat(shader rl.Shader, loc int32, v float64) {
	if loc != -1 {
		rl.SetShaderValue(shader, loc, []float32{float32(v)}, rl.ShaderUniformFloat)
	}
}

// ApplyItem uploads the uniforms of one item before it is drawn.
func (v *Variant) ApplyItem(item scene.ItemState, static scene.StaticUniforms, now float64) {
	p, sh := v.Parameters, v.Shader

	setFloat(sh, p.Time, now)
	setFloat(sh, p.ScrollSpeed, item.ScrollSpeed)
	setFloat(sh, p.Distance, item.Distance)
	setFloat(sh, p.Progress, item.ProgressToActive)
	setFloat(sh, p.IsActive, static.IsActive)

	if p.ZoomScale != -1 {
		zoom := []float32{float32(static.ZoomScale[0]), float32(static.ZoomScale[1])}
		rl.SetShaderValue(sh, p.ZoomScale, zoom, rl.ShaderUniformVec2)
	}
	if p.GrayOverlay != -1 {
		g := item.GrayOverlay
		rl.SetShaderValue(sh, p.GrayOverlay, []float32{float32(g.X), float32(g.Y), float32(g.Z), float32(g.W)}, rl.ShaderUniformVec4)
	}
}

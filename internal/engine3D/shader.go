package engine3D

import (
	"fmt"
	"sort"
	"strings"

	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var log = utils.Module("engine3D")

// The item plane comes from GenMeshPlane, which lies in XZ with v growing
// along +z. The vertex stage lays it in XY and flips v so uv (0,0) is the
// bottom-left corner, which is what the deformation formulas expect.
const itemVertexShader = `
in vec3 vertexPosition;
in vec2 vertexTexCoord;

uniform mat4 mvp;
uniform float uTime;
uniform float uScrollSpeed;
uniform float uDistance;
uniform vec2 uZoomScale;
uniform float uProgress;
uniform float uIsActive;

out vec2 vUv;

const float PI = 3.14159265359;

void main() {
    vUv = vec2(vertexTexCoord.x, 1.0 - vertexTexCoord.y);
    vec3 pos = vec3(vertexPosition.x, -vertexPosition.z, 0.0);

#if FLOATING
    if (uIsActive < 0.5) {
        pos.y += sin(PI * uTime) * 0.1;
    }
#endif

    pos.y += sin(PI * vUv.x) * uScrollSpeed * 0.7;
    pos.z += cos(PI * vUv.y) * uScrollSpeed * 0.7;

#if PARALLAX
    vec2 offset = vUv - vec2(0.5);
    vUv = offset * 0.7 + vec2(0.5);
    vUv += offset * uDistance * 0.3;

    float wave = cos(uProgress * PI / 2.0);
    float ripple = sin(length(vUv - vec2(0.5) * PI) * 15.0 + uProgress * 12.0) * 0.5 + 0.5;
    pos.x *= mix(1.0, uZoomScale.x + wave * ripple, uProgress);
    pos.y *= mix(1.0, uZoomScale.y + wave * ripple, uProgress);
#endif

    gl_Position = mvp * vec4(pos, 1.0);
}
`

const itemFragmentShader = `
in vec2 vUv;

uniform sampler2D texture0;
uniform vec4 uGrayOverlay;

out vec4 finalColor;

void main() {
    vec3 color = texture(texture0, vec2(vUv.x, 1.0 - vUv.y)).rgb;
    color = mix(color, uGrayOverlay.rgb, uGrayOverlay.a);
    finalColor = vec4(color, 1.0);
}
`

// PreprocessShader prepends the GLSL version and one #define per combo.
// Combos are written in name order so equal sets give identical sources.
func PreprocessShader(source string, combos map[string]int) string {
	var sb strings.Builder
	sb.WriteString("#version 330\n")

	names := make([]string, 0, len(combos))
	for k := range combos {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		sb.WriteString(fmt.Sprintf("#define %s %d\n", k, combos[k]))
	}

	sb.WriteString(strings.TrimLeft(source, "\n"))
	return sb.String()
}

// ShaderKey selects a compiled variant of the item shader.
type ShaderKey struct {
	Parallax bool
	Floating bool
}

func (k ShaderKey) combos() map[string]int {
	combos := map[string]int{"PARALLAX": 0, "FLOATING": 0}
	if k.Parallax {
		combos["PARALLAX"] = 1
	}
	if k.Floating {
		combos["FLOATING"] = 1
	}
	return combos
}

// Variant is one compiled item shader and its uniform locations.
type Variant struct {
	Shader     rl.Shader
	Parameters ShaderParameters
}

// ShaderCache compiles each variant once, on first use. A variant that
// fails to compile is remembered as nil so it is not retried every frame.
type ShaderCache struct {
	variants map[ShaderKey]*Variant
}

func NewShaderCache() *ShaderCache {
	return &ShaderCache{variants: make(map[ShaderKey]*Variant)}
}

func (c *ShaderCache) Get(key ShaderKey) *Variant {
	if v, ok := c.variants[key]; ok {
		return v
	}

	combos := key.combos()
	log.Debug("Shader: Compiling item shader (Combos: %v)", combos)
	shader := rl.LoadShaderFromMemory(
		PreprocessShader(itemVertexShader, combos),
		PreprocessShader(itemFragmentShader, combos),
	)

	params := ResolveShaderLocations(shader)
	// raylib falls back to its default shader on compile errors, which has
	// none of the item uniforms.
	if shader.ID == 0 || params.ScrollSpeed == -1 || params.GrayOverlay == -1 {
		log.Error("Shader: Item shader %+v failed to compile, items using it are skipped", key)
		c.variants[key] = nil
		return nil
	}

	log.Info("Shader: Item shader %+v loaded (ID: %d)", key, shader.ID)
	v := &Variant{Shader: shader, Parameters: params}
	c.variants[key] = v
	return v
}

func (c *ShaderCache) Unload() {
	for key, v := range c.variants {
		if v != nil {
			rl.UnloadShader(v.Shader)
		}
		delete(c.variants, key)
	}
}

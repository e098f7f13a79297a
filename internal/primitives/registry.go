package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a cached mesh.
type Kind string

const (
	Cube Kind = "cube"
	// Plane is a 1x1 quad in XZ facing +Y (floor). Rotate for upright quads.
	Plane Kind = "plane"
)

// cached holds the mesh plus a lit material (ambient + directional) and an unlit textured one.
// Created lazily on first Draw so GPU resources are allocated after the window exists.
type cached struct {
	mesh  rl.Mesh
	lit   rl.Material
	unlit rl.Material
}

// Lights is the scene lighting: one ambient term and one directional light.
// Direction points from the surface toward the light.
type Lights struct {
	AmbientIntensity     float32
	Direction            rl.Vector3
	DirectionalIntensity float32
}

// Registry maps mesh kinds to GPU resources.
type Registry struct {
	cache  map[Kind]cached
	lights Lights
}

// NewRegistry returns an empty registry lit by lights.
func NewRegistry(lights Lights) *Registry {
	lights.Direction = rl.Vector3Normalize(lights.Direction)
	return &Registry{cache: make(map[Kind]cached), lights: lights}
}

func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch kind {
	case Cube:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Plane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	lit := rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		lit.Shader = shader
	}
	// raylib's default shader samples the albedo map times colDiffuse with no lighting.
	unlit := rl.LoadMaterialDefault()
	if albedo := unlit.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	c := cached{mesh: mesh, lit: lit, unlit: unlit}
	r.cache[kind] = c
	return c, true
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform float ambientIntensity;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 lit = colDiffuse.rgb * (ambientIntensity + NdotL * lightIntensity);
  finalColor = vec4(min(lit, vec3(1.0)), colDiffuse.a);
}
`
)

func (r *Registry) setLitUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	dir := []float32{r.lights.Direction.X, r.lights.Direction.Y, r.lights.Direction.Z}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambientIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.lights.AmbientIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.lights.DirectionalIntensity}, rl.ShaderUniformFloat)
	}
}

// DrawLit draws kind with transform in a flat color under the scene lights.
// Must be called between BeginMode3D and EndMode3D. Unknown kinds are skipped.
func (r *Registry) DrawLit(kind Kind, transform rl.Matrix, col color.RGBA) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if albedo := c.lit.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = col
	}
	r.setLitUniforms(c.lit.Shader)
	rl.DrawMesh(c.mesh, c.lit, transform)
}

// DrawTextured draws kind with tex as an unlit albedo, so video colors are shown as decoded.
// An invalid texture falls back to a black quad.
func (r *Registry) DrawTextured(kind Kind, transform rl.Matrix, tex rl.Texture2D) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if !rl.IsTextureValid(tex) {
		r.DrawLit(kind, transform, rl.Black)
		return
	}
	rl.SetMaterialTexture(&c.unlit, rl.MapAlbedo, tex)
	rl.DrawMesh(c.mesh, c.unlit, transform)
}

// Unload releases every cached mesh and shader. The registry can be reused afterwards.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		if rl.IsShaderValid(c.lit.Shader) {
			rl.UnloadShader(c.lit.Shader)
		}
		delete(r.cache, kind)
	}
}

// Transform builds scale, then rotation about X, then translation.
func Transform(position rl.Vector3, scale rl.Vector3, rotX float32) rl.Matrix {
	m := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	if rotX != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateX(rotX))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position.X, position.Y, position.Z))
}

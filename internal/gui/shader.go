package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Single-pass bloom: threshold the neighborhood, box-blur it, and add it
// back onto the base color. Strength, radius and threshold come from the
// scene config.
const bloomFS = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec4 colDiffuse;

uniform vec2 resolution;
uniform float strength;
uniform float radius;
uniform float threshold;

out vec4 finalColor;

void main()
{
    vec2 px = radius / resolution;
    vec4 sum = vec4(0.0);

    for (int x = -4; x <= 4; x++)
    {
        for (int y = -4; y <= 4; y++)
        {
            vec4 c = texture(texture0, fragTexCoord + vec2(float(x), float(y)) * px);
            float lum = dot(c.rgb, vec3(0.299, 0.587, 0.114));
            sum += c * step(threshold, lum);
        }
    }
    sum /= 81.0;

    vec4 base = texture(texture0, fragTexCoord);
    finalColor = (base + sum * strength) * colDiffuse * fragColor;
}
`

// Default passthrough vertex stage for the bloom pass.
const bloomVS = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// initBloom compiles the post-processing shader and binds the config's
// bloom parameters as uniforms.
func (a *App) initBloom() {
	a.Bloom = rl.LoadShaderFromMemory(bloomVS, bloomFS)

	a.bloomRes = rl.GetShaderLocation(a.Bloom, "resolution")
	rl.SetShaderValue(a.Bloom, a.bloomRes,
		[]float32{float32(a.Cfg.Window.Width), float32(a.Cfg.Window.Height)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(a.Bloom, rl.GetShaderLocation(a.Bloom, "strength"),
		[]float32{float32(a.Cfg.Bloom.Strength)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(a.Bloom, rl.GetShaderLocation(a.Bloom, "radius"),
		[]float32{float32(a.Cfg.Bloom.Radius)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(a.Bloom, rl.GetShaderLocation(a.Bloom, "threshold"),
		[]float32{float32(a.Cfg.Bloom.Threshold)}, rl.ShaderUniformFloat)
}

package renderer

// Vertex layout: location 0 position, location 1 normal.
const phongVertexShader = `#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat3 uNormalMatrix;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = uNormalMatrix * aNormal;
    gl_Position = uProjection * uView * world;
}
`

// Lighting must stay in step with lighting.Shade.
const phongFragmentShader = `#version 410 core

#define MAX_LIGHTS 4

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uViewPos;

uniform int uNumLights;
uniform vec3 uLightPositions[MAX_LIGHTS];
uniform vec3 uLightColors[MAX_LIGHTS];
uniform float uLightIntensities[MAX_LIGHTS];

uniform vec3 uDiffuse;
uniform vec3 uSpecular;
uniform vec3 uEmission;
uniform float uShininess;
uniform float uAlpha;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 viewDir = normalize(uViewPos - vWorldPos);

    vec3 result = uEmission;
    for (int i = 0; i < uNumLights && i < MAX_LIGHTS; i++) {
        vec3 lightDir = normalize(uLightPositions[i] - vWorldPos);
        vec3 color = uLightColors[i] * uLightIntensities[i];

        float diff = max(dot(n, lightDir), 0.0);
        result += color * uDiffuse * diff;

        if (uShininess > 0.0) {
            vec3 reflectDir = reflect(-lightDir, n);
            float spec = pow(max(dot(viewDir, reflectDir), 0.0), uShininess);
            result += color * uSpecular * spec;
        }
    }

    result += 0.1 * uDiffuse;
    FragColor = vec4(result, uAlpha);
}
`

const lineVertexShader = `#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
`

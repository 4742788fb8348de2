package render

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

// phongReflection evaluates the Phong reflection equation shared by the
// per-vertex (Flat/Gouraud) and per-fragment (Phong) shading paths.
// albedo is the surface color before lighting: the vertex's own
// ShadedColor for the per-vertex paths, or the sampled texture / the
// interpolated ShadedColor for the per-fragment path.
func phongReflection(u *Uniforms, worldPos, worldNormal, albedo math3d.Vec3) math3d.Vec3 {
	n := worldNormal.Normalize()
	v := u.WorldCameraPosition.Sub(worldPos).Normalize()

	var l math3d.Vec3
	if u.DirectionalLightOn {
		l = u.WorldLightDirection
	} else {
		l = worldPos.Sub(u.WorldLightPosition).Normalize()
	}

	ambient := 0.2
	specColor := math3d.V3(0, 0, 0)
	if u.DirectionalLightOn {
		specColor = math3d.V3(1, 1, 1)
	}

	if u.SunMesh {
		l = v.Negate()
		ambient += 0.4
		specColor = math3d.V3(0, 0, 0)
	}

	diffuse := math.Max(l.Negate().Dot(n), 0)
	r := l.Reflect(n).Normalize()
	specular := diffuse * math.Pow(math.Max(r.Dot(v), 0), float64(u.Shininess))

	result := albedo.Scale(ambient + diffuse).Add(specColor.Scale(specular))
	return clampVec3(result, 0, 1)
}

func clampVec3(v math3d.Vec3, lo, hi float64) math3d.Vec3 {
	return math3d.V3(clampF(v.X, lo, hi), clampF(v.Y, lo, hi), clampF(v.Z, lo, hi))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

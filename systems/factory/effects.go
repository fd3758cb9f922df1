package factory

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/laserbeam-mp/archetypes"
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi/ecs"
)

// maxParticlesPerEmit bounds one EmitParticles call on long beams.
const maxParticlesPerEmit = 32

// DurationFrames converts a duration in milliseconds to update frames at tps.
func DurationFrames(durationMs, tps int) int {
	frames := durationMs * tps / 1000
	if frames < 1 {
		frames = 1
	}
	return frames
}

// SpawnParticle creates one spark.
func SpawnParticle(ecs *ecs.ECS, pos, vel vector.Vector, frames int, clr color.RGBA, size float64) {
	entry := archetypes.Particle.Spawn(ecs)
	components.Particle.Set(entry, &components.ParticleData{
		Pos:    pos.Clone(),
		Vel:    vel,
		MaxTTL: frames,
		Color:  clr,
		Size:   size,
	})
	components.AutoDestroy.Set(entry, &components.AutoDestroyData{FramesRemaining: frames})
}

// SpawnBeamParticles scatters sparks along start->end, one every
// ParticleStride world units. scale multiplies the drift on each axis.
func SpawnBeamParticles(ecs *ecs.ECS, start, end, scale vector.Vector, frames int) int {
	length := gamemath.Distance(start, end)
	n := int(length/cfg.Render.ParticleStride) + 1
	if n > maxParticlesPerEmit {
		n = maxParticlesPerEmit
	}

	for i := 0; i < n; i++ {
		t := rand.Float64()
		pos := gamemath.Lerp3(start, end, t)
		vel := gamemath.Vec3(
			(rand.Float64()-0.5)*0.4*scale[0],
			(rand.Float64()-0.5)*0.4*scale[1],
			rand.Float64()*0.3*scale[2],
		)
		SpawnParticle(ecs, pos, vel, frames, cfg.Render.BeamTint, 1.5)
	}
	return n
}

// SpawnHitBurst throws sparks out of a surface along its normal.
func SpawnHitBurst(ecs *ecs.ECS, point, normal vector.Vector) {
	frames := cfg.Render.ParticleTTL * 2
	for i := 0; i < 12; i++ {
		jitter := gamemath.Vec3(rand.Float64()-0.5, rand.Float64()-0.5, rand.Float64()-0.5)
		vel := gamemath.Normalize(normal.Add(jitter)).Scale(0.8 + rand.Float64())
		SpawnParticle(ecs, point, vel, frames, cfg.Yellow, 2)
	}
}

// SpawnRadarBlip marks a hit position on the radar.
func SpawnRadarBlip(ecs *ecs.ECS, x, y float64) {
	entry := archetypes.Blip.Spawn(ecs)
	components.RadarBlip.Set(entry, &components.RadarBlipData{X: x, Y: y, MaxTTL: cfg.Radar.HitBlipFrames})
	components.AutoDestroy.Set(entry, &components.AutoDestroyData{FramesRemaining: cfg.Radar.HitBlipFrames})
}

package tags

import "github.com/yohamta/donburi"

var (
	Turret   = donburi.NewTag().SetName("Turret")
	Laser    = donburi.NewTag().SetName("Laser")
	Particle = donburi.NewTag().SetName("Particle")
	Blip     = donburi.NewTag().SetName("Blip")
)

package physics

import (
	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/vmath"
)

// Integrate applies one tick of constant velocity, independent of elapsed real time
func Integrate(p *component.Projectile) {
	p.Advance()
}

// Exited reports whether the projectile left the field grown by its margin
func Exited(p *component.Projectile, field Field) bool {
	return vmath.AreaOutside(p.Bounds(), field.Width, field.Height, field.Margin)
}

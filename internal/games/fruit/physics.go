package fruit

import "github.com/vovakirdan/fruitslice/internal/core"

// integrate advances one body by dt seconds under downward gravity
// (semi-implicit Euler: velocity first, then position).
func integrate(pos, vel *core.Vec, gravity, dt float64) {
	vel.Y += gravity * dt
	*pos = pos.Add(vel.Scale(dt))
}

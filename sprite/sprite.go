// Package sprite holds the moving object the playground draws. Its field
// pairs mirror a classic arcade sprite: position, velocity, acceleration,
// friction and scale.
package sprite

import (
	"fmt"
	"math"
	"strings"
)

type Property int

const (
	Position Property = iota
	Velocity
	Acceleration
	Friction
	Scale
)

var propertyNames = map[Property]string{
	Position:     "position",
	Velocity:     "velocity",
	Acceleration: "acceleration",
	Friction:     "friction",
	Scale:        "scale",
}

func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty maps a case-insensitive property name to its Property.
func ParseProperty(name string) (Property, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range propertyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown sprite property %q", name)
}

// Properties lists every Property in declaration order.
func Properties() []Property {
	return []Property{Position, Velocity, Acceleration, Friction, Scale}
}

type Sprite struct {
	Name string

	X, Y   float64 // position, pixels
	VX, VY float64 // velocity, pixels per second
	AX, AY float64 // acceleration, pixels per second squared
	FX, FY float64 // friction, pixels per second squared opposing velocity
	SX, SY float64 // scale
}

func New(name string, x, y float64) *Sprite {
	return &Sprite{
		Name: name,
		X:    x,
		Y:    y,
		SX:   1,
		SY:   1,
	}
}

// Step advances the sprite by dt seconds. Acceleration is applied first;
// friction only slows an axis that has no acceleration and never reverses it.
func (s *Sprite) Step(dt float64) {
	s.VX = stepAxis(s.VX, s.AX, s.FX, dt)
	s.VY = stepAxis(s.VY, s.AY, s.FY, dt)

	s.X += s.VX * dt
	s.Y += s.VY * dt
}

func stepAxis(velocity, acceleration, friction, dt float64) float64 {
	if acceleration != 0 {
		return velocity + acceleration*dt
	}
	if friction == 0 || velocity == 0 {
		return velocity
	}

	slowdown := math.Abs(friction) * dt
	if math.Abs(velocity) <= slowdown {
		return 0
	}
	return velocity - math.Copysign(slowdown, velocity)
}

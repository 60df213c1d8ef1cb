package physics

import (
	"errors"
	"math"
	"testing"
)

func mustBody(t *testing.T, x, y, radius float64) Body {
	t.Helper()
	b, err := NewBody(Vector2D{X: x, Y: y}, radius)
	if err != nil {
		t.Fatalf("NewBody() error = %v", err)
	}
	return b
}

func TestNewBody(t *testing.T) {
	b := mustBody(t, 300, 300, 100)
	if b.FieldRange != 400 {
		t.Errorf("FieldRange = %f, expected 400", b.FieldRange)
	}
	if b.Force != GravityForce {
		t.Errorf("Force = %f, expected %f", b.Force, GravityForce)
	}
	if b.Radius != 100 {
		t.Errorf("Radius = %f, expected 100", b.Radius)
	}
}

func TestNewBody_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := NewBody(Vector2D{}, radius)
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("NewBody(radius=%f) error = %v, expected ErrInvalidRadius", radius, err)
		}
	}
}

func TestFalloffScale(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{"at_center", 0, 0},
		{"negative", -0.5, 0},
		{"half_range", 0.5, 0.875},
		{"quarter_range", 0.25, 1 - 0.015625},
		{"on_edge", 1, 0},
		{"outside", 1.5, 0},
		{"far_outside", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FalloffScale(tt.ratio); math.Abs(got-tt.expected) > epsilon {
				t.Errorf("FalloffScale(%f) = %f, expected %f", tt.ratio, got, tt.expected)
			}
		})
	}
}

func TestFalloffScale_Bounded(t *testing.T) {
	for ratio := -2.0; ratio <= 2; ratio += 0.01 {
		s := FalloffScale(ratio)
		if s < 0 || s > 1 {
			t.Fatalf("FalloffScale(%f) = %f, outside [0,1]", ratio, s)
		}
	}
}

func TestBody_Pull(t *testing.T) {
	body := mustBody(t, 300, 300, 100)

	tests := []struct {
		name     string
		craft    Vector2D
		expected Vector2D
	}{
		{
			name:     "at_body_center",
			craft:    Vector2D{X: 300, Y: 300},
			expected: Vector2D{},
		},
		{
			name:     "directly_above_equal_x_pulls_left",
			craft:    Vector2D{X: 300, Y: 100},
			expected: Vector2D{X: -0.04375, Y: 0.04375},
		},
		{
			name:     "up_left_pulls_down_right",
			craft:    Vector2D{X: 200, Y: 200},
			expected: Vector2D{X: 1, Y: 1}.Scale(FalloffScale(math.Hypot(100, 100)/400) * GravityForce),
		},
		{
			name:     "down_right_pulls_up_left",
			craft:    Vector2D{X: 400, Y: 400},
			expected: Vector2D{X: -1, Y: -1}.Scale(FalloffScale(math.Hypot(100, 100)/400) * GravityForce),
		},
		{
			name:     "outside_field",
			craft:    Vector2D{X: 800, Y: 300},
			expected: Vector2D{},
		},
		{
			name:     "on_field_edge",
			craft:    Vector2D{X: 700, Y: 300},
			expected: Vector2D{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := body.Pull(tt.craft)
			if !got.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Pull(%v) = %v, expected %v", tt.craft, got, tt.expected)
			}
		})
	}
}

func TestApplyGravity_ReplacesVelocityWithAccumulatedSum(t *testing.T) {
	bodies := []Body{mustBody(t, 300, 300, 100)}
	c := &Craft{Position: Vector2D{X: 300, Y: 100}, Velocity: Vector2D{X: 0.1, Y: 0}}

	ApplyGravity(c, bodies)

	expected := Vector2D{X: 0.1 - 0.04375, Y: 0.04375}
	if !c.Velocity.ApproxEqual(expected, 1e-12) {
		t.Errorf("Velocity = %v, expected %v", c.Velocity, expected)
	}
	if c.Position != (Vector2D{X: 300, Y: 100}) {
		t.Errorf("ApplyGravity() moved the craft to %v", c.Position)
	}
}

func TestApplyGravity_NoBodies(t *testing.T) {
	c := &Craft{Velocity: Vector2D{X: 2, Y: 3}}
	ApplyGravity(c, nil)
	if c.Velocity != (Vector2D{X: 2, Y: 3}) {
		t.Errorf("Velocity = %v, expected unchanged", c.Velocity)
	}
}

func TestApplyGravity_OrderIndependent(t *testing.T) {
	bodies := []Body{
		mustBody(t, 300, 300, 100),
		mustBody(t, 700, 500, 100),
		mustBody(t, 450, 380, 60),
	}
	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	start := Vector2D{X: 480, Y: 410}

	var reference Vector2D
	for i, perm := range permutations {
		ordered := make([]Body, len(perm))
		for j, idx := range perm {
			ordered[j] = bodies[idx]
		}
		c := &Craft{Position: start, Velocity: Vector2D{X: 0.3, Y: -0.2}}
		ApplyGravity(c, ordered)

		if i == 0 {
			reference = c.Velocity
			continue
		}
		if !c.Velocity.ApproxEqual(reference, 1e-12) {
			t.Errorf("permutation %v: velocity %v differs from %v", perm, c.Velocity, reference)
		}
	}
}

func TestGravityField_Observer(t *testing.T) {
	bodies := []Body{
		mustBody(t, 300, 300, 100),
		mustBody(t, 700, 500, 100),
	}

	type observation struct {
		index        int
		ratio, scale float64
	}
	var seen []observation
	field := GravityField{
		Bodies: bodies,
		Observer: ObserverFunc(func(index int, body Body, ratio, scale float64) {
			if body != bodies[index] {
				t.Errorf("observer got body %v at index %d", body, index)
			}
			seen = append(seen, observation{index, ratio, scale})
		}),
	}

	c := &Craft{Position: Vector2D{X: 300, Y: 100}}
	field.Apply(c)

	if len(seen) != 2 {
		t.Fatalf("observer called %d times, expected 2", len(seen))
	}
	if seen[0].ratio != 0.5 || seen[0].scale != 0.875 {
		t.Errorf("first observation = %+v, expected ratio 0.5 scale 0.875", seen[0])
	}
	if seen[1].ratio <= 1 || seen[1].scale != 0 {
		t.Errorf("second observation = %+v, expected a body out of range", seen[1])
	}

	plain := &Craft{Position: Vector2D{X: 300, Y: 100}}
	ApplyGravity(plain, bodies)
	if plain.Velocity != c.Velocity {
		t.Errorf("observed velocity %v differs from plain %v", c.Velocity, plain.Velocity)
	}
}

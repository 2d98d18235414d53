package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRectF(50, 460, 30, 40),
			b:        NewRectF(0, 500, 300, 20),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.75, 9.75, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectFRestsOn(t *testing.T) {
	platform := NewRectF(0, 500, 300, 20)

	tests := []struct {
		name     string
		r        RectF
		expected bool
	}{
		{"standing on top", NewRectF(50, 460, 30, 40), true},
		{"hovering above", NewRectF(50, 459, 30, 40), false},
		{"within slop above", NewRectF(50, 460-1e-9, 30, 40), true},
		{"within slop below", NewRectF(50, 460+1e-9, 30, 40), true},
		{"sunk in", NewRectF(50, 461, 30, 40), false},
		{"corner only", NewRectF(300, 460, 30, 40), false},
		{"off the left edge", NewRectF(-30, 460, 30, 40), false},
		{"overhanging edge", NewRectF(290, 460, 30, 40), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.RestsOn(platform); got != tc.expected {
				t.Errorf("RestsOn() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected RectF
	}{
		{
			name:     "landing",
			a:        NewRectF(50, 465, 30, 40),
			b:        NewRectF(0, 500, 300, 20),
			expected: NewRectF(50, 500, 30, 5),
		},
		{
			name:     "side hit",
			a:        NewRectF(395, 420, 30, 40),
			b:        NewRectF(400, 450, 250, 20),
			expected: NewRectF(400, 450, 25, 10),
		},
		{
			name:     "disjoint",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(20, 20, 10, 10),
			expected: RectF{},
		},
		{
			name:     "resting contact",
			a:        NewRectF(50, 460, 30, 40),
			b:        NewRectF(0, 500, 300, 20),
			expected: NewRectF(50, 500, 30, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Overlap(tc.b)
			if got != tc.expected {
				t.Errorf("Overlap() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectFCenter(t *testing.T) {
	r := NewRectF(100, 300, 30, 40)
	c := r.Center()
	if c.X != 115 || c.Y != 320 {
		t.Errorf("Center() = %+v, expected {115 320}", c)
	}
	if r.Right() != 130 || r.Bottom() != 340 {
		t.Errorf("Right()/Bottom() = %v/%v, expected 130/340", r.Right(), r.Bottom())
	}
}

func TestCircleHit(t *testing.T) {
	origin := Vec2{X: 0, Y: 0}

	tests := []struct {
		name     string
		q        Vec2
		expected bool
	}{
		{"inside", Vec2{X: 10, Y: 0}, true},
		{"exact boundary", Vec2{X: 30, Y: 0}, false},
		{"3-4-5 boundary", Vec2{X: 18, Y: 24}, false},
		{"just inside", Vec2{X: 29.999, Y: 0}, true},
		{"outside", Vec2{X: 31, Y: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleHit(origin, 15, tc.q, 15); got != tc.expected {
				t.Errorf("CircleHit() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 3 {
		t.Errorf("Add/Scale = %+v, expected {2 3}", v)
	}
	if !v.IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec2{X: math.NaN()}).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if (Vec2{Y: math.Inf(1)}).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{300, -250, 250, 250},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}

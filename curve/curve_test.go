// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCurveDefaults(t *testing.T) {
	c := NewCurve()
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, c.Points())
	assert.Equal(t, CatmullRom, c.Algorithm())
	assert.Equal(t, 2, c.NumPoints())
}

func TestSetPointsSortsAndClamps(t *testing.T) {
	c := NewCurve()
	c.SetPoints([]Point{{1, 2}, {0.5, -1}, {0, 0.5}})
	assert.Equal(t, []Point{{0, 0.5}, {0.5, 0}, {1, 1}}, c.Points())
}

func TestSetPointsTooFew(t *testing.T) {
	c := NewCurve()
	c.SetPoints([]Point{{0.5, 0.5}})
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, c.Points())
}

func TestInsert(t *testing.T) {
	c := NewCurve()
	i := c.Insert(Pt(0.5, 0.25))
	assert.Equal(t, 1, i)
	assert.Equal(t, []Point{{0, 0}, {0.5, 0.25}, {1, 1}}, c.Points())
}

func TestInsertCap(t *testing.T) {
	c := NewCurve()
	for i := 0; i < MaxPoints; i++ {
		c.Insert(Pt(float32(i+1)/(MaxPoints+2), 0.5))
	}
	assert.Equal(t, MaxPoints, c.NumPoints())
	assert.Equal(t, -1, c.Insert(Pt(0.99, 0.99)))
	assert.Equal(t, MaxPoints, c.NumPoints())
}

func TestMoveBoundaryPinned(t *testing.T) {
	c := NewCurve()
	i := c.Move(0, Pt(0.4, 0.8))
	assert.Equal(t, 0, i)
	assert.Equal(t, Pt(0, 0.8), c.Point(0))

	last := c.NumPoints() - 1
	i = c.Move(last, Pt(0.2, 0.3))
	assert.Equal(t, last, i)
	assert.Equal(t, Pt(1, 0.3), c.Point(last))
}

func TestMoveResortRecoversIndex(t *testing.T) {
	c := NewCurve()
	c.Insert(Pt(0.3, 0.3))
	c.Insert(Pt(0.6, 0.6))
	// drag the point at index 1 past the one at index 2
	i := c.Move(1, Pt(0.8, 0.4))
	assert.Equal(t, 2, i)
	assert.Equal(t, Pt(0.8, 0.4), c.Point(2))
	assert.Equal(t, Pt(0.6, 0.6), c.Point(1))
}

func TestMoveClamps(t *testing.T) {
	c := NewCurve()
	c.Insert(Pt(0.5, 0.5))
	i := c.Move(1, Pt(1.5, -0.5))
	// clamped x collides with the boundary anchor; order is preserved
	assert.Equal(t, Pt(1, 0), c.Point(i))
}

func TestDeleteRules(t *testing.T) {
	c := NewCurve()
	assert.False(t, c.Delete(0)) // boundary
	assert.False(t, c.Delete(1)) // boundary
	assert.Equal(t, 2, c.NumPoints())

	c.Insert(Pt(0.5, 0.5))
	assert.False(t, c.Delete(0))
	assert.False(t, c.Delete(2))
	assert.True(t, c.Delete(1))
	assert.Equal(t, 2, c.NumPoints())
	assert.False(t, c.Delete(1))
}

func TestDeleteOutOfRange(t *testing.T) {
	c := NewCurve()
	assert.False(t, c.Delete(-1))
	assert.False(t, c.Delete(10))
}

// TestInvariantsRandom runs a random edit sequence and checks that
// the point count stays in [2,50], all coordinates stay in [0,1],
// and the sequence remains sorted by x.
func TestInvariantsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewCurve()
	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			c.Insert(Pt(rng.Float32()*2-0.5, rng.Float32()*2-0.5))
		case 1:
			c.Move(rng.Intn(c.NumPoints()), Pt(rng.Float32()*2-0.5, rng.Float32()*2-0.5))
		case 2:
			c.Delete(rng.Intn(c.NumPoints()))
		}
		pts := c.Points()
		assert.GreaterOrEqual(t, len(pts), MinPoints)
		assert.LessOrEqual(t, len(pts), MaxPoints)
		for j, p := range pts {
			assert.GreaterOrEqual(t, p.X, float32(0))
			assert.LessOrEqual(t, p.X, float32(1))
			assert.GreaterOrEqual(t, p.Y, float32(0))
			assert.LessOrEqual(t, p.Y, float32(1))
			if j > 0 {
				assert.LessOrEqual(t, pts[j-1].X, p.X)
			}
		}
	}
}

func TestClone(t *testing.T) {
	c := NewCurve()
	c.Insert(Pt(0.5, 0.7))
	c.SetAlgorithm(Linear)
	cp := c.Clone()
	cp.Move(1, Pt(0.2, 0.2))
	assert.Equal(t, Pt(0.5, 0.7), c.Point(1))
	assert.Equal(t, Linear, cp.Algorithm())
}

package object

import (
	"testing"

	"github.com/graeme-lockley/cursor-asteroids/internal/geom"
)

func TestNewBulletVelocityAndCap(t *testing.T) {
	b := NewBullet(geom.Vec{X: 400, Y: 300}, 0, testBounds)
	defer b.Release()

	if speed := b.Vel.Len(); speed != BulletSpeed {
		t.Errorf("expected speed %f, got %f", BulletSpeed, speed)
	}
	want := testBounds.MinDimension() * BulletMaxDistanceFrac
	if b.MaxTravel != want {
		t.Errorf("expected travel cap %f, got %f", want, b.MaxTravel)
	}
	if b.Dead() {
		t.Error("fresh bullet should be alive")
	}
}

func TestBulletExpiresByDistance(t *testing.T) {
	b := NewBullet(geom.Vec{X: 400, Y: 300}, 0, testBounds)
	defer b.Release()

	ctx := UpdateContext{Delta: frame, Bounds: testBounds}

	// 570 units at 500 u/s takes 1.14s; walk frame by frame and count.
	var ticks int
	for !b.Update(ctx) {
		ticks++
		if ticks > 120 {
			t.Fatal("bullet never expired")
		}
	}

	// Expiry tick is cap / (speed * dt), rounded up.
	wantTicks := int(b.MaxTravel/(BulletSpeed*frame.Seconds())) + 1
	if ticks+1 != wantTicks {
		t.Errorf("expected expiry on tick %d, got %d", wantTicks, ticks+1)
	}
	if !b.Dead() {
		t.Error("expired bullet should report dead")
	}
}

func TestBulletDistanceAccumulatesAcrossWrap(t *testing.T) {
	// Fire from near the right edge: the bullet wraps almost immediately
	// but its travel budget must not reset.
	b := NewBullet(geom.Vec{X: testBounds.Width - 5, Y: 300}, 0, testBounds)
	defer b.Release()

	ctx := UpdateContext{Delta: frame, Bounds: testBounds}

	b.Update(ctx)
	if b.Pos.X > testBounds.Width-5 {
		t.Fatalf("bullet should have wrapped, X=%f", b.Pos.X)
	}

	wantStep := BulletSpeed * frame.Seconds()
	if diff := b.Traveled - wantStep; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("wrap must not lose travelled distance: want %f, got %f", wantStep, b.Traveled)
	}
}

func TestKilledBulletRemovedNextUpdate(t *testing.T) {
	b := NewBullet(geom.Vec{X: 400, Y: 300}, 0, testBounds)
	defer b.Release()

	b.Kill()
	if !b.Dead() {
		t.Fatal("Kill should mark the bullet dead")
	}
	if !b.Update(UpdateContext{Delta: frame, Bounds: testBounds}) {
		t.Error("dead bullet should request removal")
	}
}

func TestBulletPoolReuseResetsState(t *testing.T) {
	b := NewBullet(geom.Vec{X: 1, Y: 1}, 0, testBounds)
	b.Traveled = 123
	b.Kill()
	b.Release()

	// The pool may or may not hand back the same object; either way the
	// constructor must fully reinitialize it.
	b2 := NewBullet(geom.Vec{X: 2, Y: 2}, 0, testBounds)
	defer b2.Release()

	if b2.Dead() {
		t.Error("reused bullet must not be dead")
	}
	if b2.Traveled != 0 {
		t.Errorf("reused bullet must start with zero travel, got %f", b2.Traveled)
	}
}

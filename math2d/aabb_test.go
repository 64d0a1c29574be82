package math2d

import "testing"

func TestAABBIntersectsSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"overlapping", NewAABB(0, 0, 10, 10), NewAABB(5, 5, 10, 10), true},
		{"touching_edge", NewAABB(0, 0, 10, 10), NewAABB(10, 0, 10, 10), false},
		{"disjoint", NewAABB(0, 0, 10, 10), NewAABB(200, 200, 10, 10), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("a.Intersects(b) = %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("b.Intersects(a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAABBPenetrationAntisymmetric(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(5, 5, 10, 10)
	if !a.Intersects(b) {
		t.Fatal("expected intersection")
	}
	pAB := a.Penetration(b)
	pBA := b.Penetration(a)
	if pAB.X != -pBA.X || pAB.Y != -pBA.Y {
		t.Fatalf("penetration(a,b)=%v should equal -penetration(b,a)=%v", pAB, Vec2{-pBA.X, -pBA.Y})
	}
}

func TestAABBPenetrationTieBreaksY(t *testing.T) {
	// Equal-magnitude overlap on both axes should resolve on Y.
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(5, 5, 10, 10)
	pen := a.Penetration(b)
	if pen.X != 0 || pen.Y == 0 {
		t.Fatalf("expected y-axis resolution on tie, got %v", pen)
	}
}

func TestAABBPenetrationNoOverlap(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(100, 100, 10, 10)
	if pen := a.Penetration(b); pen != (Vec2{}) {
		t.Fatalf("expected zero penetration for disjoint boxes, got %v", pen)
	}
}

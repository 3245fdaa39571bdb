package geometry

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add() = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, want (2, 6)", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul() = %v, want (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross() = %v, want -10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(a); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPointApproxEqual(t *testing.T) {
	a := Pt(1, 1)
	if !a.ApproxEqual(Pt(1+Eps/2, 1-Eps/2)) {
		t.Error("ApproxEqual() = false for points within Eps")
	}
	if a.ApproxEqual(Pt(1+2*Eps, 1)) {
		t.Error("ApproxEqual() = true for points apart by 2*Eps")
	}
}

func TestPoint3Plane(t *testing.T) {
	p := Pt3(3, 4, 0)
	if !p.InPlane() {
		t.Error("InPlane() = false for Z = 0")
	}
	if Pt3(3, 4, 100).InPlane() {
		t.Error("InPlane() = true for Z = 100")
	}
	if got := Pt3(3, 4, 100).XY(); got != Pt(3, 4) {
		t.Errorf("XY() = %v, want (3, 4)", got)
	}
	if math.Abs(Pt3(0, 0, 0).XY().Length()) > 0 {
		t.Error("origin projection has nonzero length")
	}
}

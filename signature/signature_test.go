/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package signature_test

import (
	"reflect"
	"testing"

	"dirpx.dev/mdx/config"
	"dirpx.dev/mdx/signature"
)

// Fixture hierarchy: circle and rect implement shape; everything
// implements any.
type shape interface{ Area() float64 }

type circle struct{ R float64 }

func (c circle) Area() float64 { return 3 * c.R * c.R }

type rect struct{ W, H float64 }

func (r rect) Area() float64 { return r.W * r.H }

var (
	anyT    = reflect.TypeOf((*any)(nil)).Elem()
	shapeT  = reflect.TypeOf((*shape)(nil)).Elem()
	circleT = reflect.TypeOf(circle{})
	rectT   = reflect.TypeOf(rect{})
	stringT = reflect.TypeOf("")
	intT    = reflect.TypeOf(0)
)

func TestEqual_Pointwise(t *testing.T) {
	a := signature.Signature{stringT, intT}
	b := signature.Signature{stringT, intT}
	c := signature.Signature{intT, stringT}

	if !a.Equal(b) {
		t.Fatalf("Equal(%s, %s) = false, want true", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("Equal(%s, %s) = true, want false", a, c)
	}
}

func TestEqual_ArityMismatch(t *testing.T) {
	a := signature.Signature{stringT}
	b := signature.Signature{stringT, intT}
	if a.Equal(b) || b.Equal(a) {
		t.Fatal("signatures of different arities must never be equal")
	}
}

func TestSupersedes_Reflexive(t *testing.T) {
	cfg := config.DefaultConfig()
	sigs := []signature.Signature{
		{stringT, intT},
		{circleT, shapeT},
		{anyT, anyT},
		{},
	}
	for _, s := range sigs {
		if !s.Supersedes(s, cfg) {
			t.Fatalf("Supersedes(%s, %s) = false, want true", s, s)
		}
	}
}

func TestSupersedes_ArityMismatchIsNeverRelated(t *testing.T) {
	cfg := config.DefaultConfig()
	a := signature.Signature{circleT}
	b := signature.Signature{circleT, circleT}
	if a.Supersedes(b, cfg) || b.Supersedes(a, cfg) {
		t.Fatal("signatures of different arities must never supersede each other")
	}
	if a.Less(b, cfg) || b.Less(a, cfg) {
		t.Fatal("signatures of different arities must never be ordered")
	}
}

func TestSupersedes_EveryPosition(t *testing.T) {
	cfg := config.DefaultConfig()
	// (circle, shape) supersedes (shape, shape): circle <= shape, shape <= shape.
	a := signature.Signature{circleT, shapeT}
	b := signature.Signature{shapeT, shapeT}
	if !a.Supersedes(b, cfg) {
		t.Fatalf("Supersedes(%s, %s) = false, want true", a, b)
	}
	// (circle, string) does not supersede (shape, int): string is not
	// a subtype of int no matter how specific position 0 is.
	c := signature.Signature{circleT, stringT}
	d := signature.Signature{shapeT, intT}
	if c.Supersedes(d, cfg) {
		t.Fatalf("Supersedes(%s, %s) = true, want false (no partial credit)", c, d)
	}
}

func TestLess_Irreflexive(t *testing.T) {
	cfg := config.DefaultConfig()
	a := signature.Signature{circleT, shapeT}
	if a.Less(a, cfg) {
		t.Fatalf("Less(%s, %s) = true, want false", a, a)
	}
}

func TestLess_Antisymmetric(t *testing.T) {
	cfg := config.DefaultConfig()
	pairs := [][2]signature.Signature{
		{{circleT, circleT}, {shapeT, shapeT}},
		{{stringT, intT}, {intT, stringT}},
		{{circleT}, {rectT}},
		{{shapeT}, {anyT}},
	}
	for _, p := range pairs {
		if p[0].Less(p[1], cfg) && p[1].Less(p[0], cfg) {
			t.Fatalf("Less(%s, %s) and Less(%s, %s) both true", p[0], p[1], p[1], p[0])
		}
	}
}

func TestLess_TransitiveChain(t *testing.T) {
	cfg := config.DefaultConfig()
	a := signature.Signature{circleT, circleT}
	b := signature.Signature{circleT, shapeT}
	c := signature.Signature{shapeT, anyT}

	if !a.Less(b, cfg) {
		t.Fatalf("Less(%s, %s) = false, want true", a, b)
	}
	if !b.Less(c, cfg) {
		t.Fatalf("Less(%s, %s) = false, want true", b, c)
	}
	if !a.Less(c, cfg) {
		t.Fatalf("transitivity: Less(%s, %s) = false, want true", a, c)
	}
}

func TestLess_IncomparablePair(t *testing.T) {
	cfg := config.DefaultConfig()
	a := signature.Signature{stringT, intT}
	b := signature.Signature{intT, stringT}
	if a.Less(b, cfg) || b.Less(a, cfg) {
		t.Fatalf("%s and %s must be mutually unordered", a, b)
	}
	if a.Equal(b) {
		t.Fatalf("%s and %s must not be equal", a, b)
	}
}

func TestString(t *testing.T) {
	s := signature.Signature{stringT, intT}
	if got := s.String(); got != "(string, int)" {
		t.Fatalf("String() = %q, want %q", got, "(string, int)")
	}
	if got := (signature.Signature{}).String(); got != "()" {
		t.Fatalf("String() = %q, want %q", got, "()")
	}
}

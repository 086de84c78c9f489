// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import "testing"

type mockHandler struct{ name string }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[*mockHandler]("test")
	r.Register(&mockHandler{name: "hello"}, "alpha")

	h, err := r.Get("alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.name != "hello" {
		t.Errorf("expected name 'hello', got %q", h.name)
	}
}

func TestRegistry_MultipleNames(t *testing.T) {
	r := NewRegistry[*mockHandler]("test")
	h := &mockHandler{name: "shared"}
	r.Register(h, ".html", ".htm")

	for _, name := range []string{".html", ".htm"} {
		got, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if got != h {
			t.Errorf("Get(%q) returned a different handler", name)
		}
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := NewRegistry[*mockHandler]("widget")
	r.Register(&mockHandler{}, "a")

	_, err := r.Get("z")
	if err == nil {
		t.Fatal("expected error for unknown name")
	}
	want := `unknown widget: "z" (available: [a])`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestRegistry_Available(t *testing.T) {
	r := NewRegistry[*mockHandler]("test")
	r.Register(&mockHandler{}, "bravo")
	r.Register(&mockHandler{}, "alpha")

	avail := r.Available()
	if len(avail) != 2 || avail[0] != "alpha" || avail[1] != "bravo" {
		t.Errorf("Available() = %v, want [alpha bravo]", avail)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry[*mockHandler]("test")
	h := &mockHandler{name: "present"}
	r.Register(h, "present")

	if got, ok := r.Lookup("present"); !ok || got != h {
		t.Errorf("Lookup(present) = (%v, %v), want (%v, true)", got, ok, h)
	}
	if _, ok := r.Lookup("absent"); ok {
		t.Error("Lookup(absent) reported ok, want miss")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry[*mockHandler]("test")
	r.Register(&mockHandler{}, "dup")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	r.Register(&mockHandler{}, "dup")
}

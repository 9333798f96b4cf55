package glutil

import (
	"testing"
)

func TestResourcesReleaseOrder(t *testing.T) {
	var r Resources
	var order []string
	r.Add("a", func() { order = append(order, "a") })
	r.Add("b", func() { order = append(order, "b") })
	r.Add("c", func() { order = append(order, "c") })

	if r.Len() != 3 {
		t.Fatalf("expected 3 pending releases, got %d", r.Len())
	}

	r.Release()
	want := []string{"c", "b", "a"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("release %d: expected %s, got %s", i, want[i], order[i])
		}
	}

	// second release is a no-op
	r.Release()
	if len(order) != 3 {
		t.Errorf("expected no further releases, got %v", order)
	}
}

func TestResourcesReleaseSurvivesPanic(t *testing.T) {
	var r Resources
	released := false
	r.Add("first", func() { released = true })
	r.Add("broken", func() { panic("boom") })

	r.Release()
	if !released {
		t.Error("release after a panicking one did not run")
	}
	if r.Len() != 0 {
		t.Errorf("expected empty resources, got %d", r.Len())
	}
}

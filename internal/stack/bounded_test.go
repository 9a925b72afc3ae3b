// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stack

import "testing"

func TestBoundedPushPop(t *testing.T) {
	s := NewBounded[int](3)
	if !s.Empty() {
		t.Fatal("new stack not empty")
	}
	for i := 1; i <= 3; i++ {
		if _, evicted := s.Push(i); evicted {
			t.Fatalf("Push(%d) evicted below capacity", i)
		}
	}
	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d,%v, want %d,true", got, ok, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop() on empty stack returned ok")
	}
}

func TestBoundedEvictsOldest(t *testing.T) {
	s := NewBounded[int](3)
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}

	old, evicted := s.Push(4)
	if !evicted || old != 1 {
		t.Fatalf("Push(4) = %d,%v, want 1,true", old, evicted)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}

	var got []int
	s.Each(func(v int) { got = append(got, v) })
	want := []int{4, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("contents = %v, want %v", got, want)
		}
	}
}

func TestBoundedNeverExceedsCap(t *testing.T) {
	s := NewBounded[int](30)
	for i := 0; i < 100; i++ {
		s.Push(i)
		if s.Len() > s.Cap() {
			t.Fatalf("Len %d exceeds Cap %d", s.Len(), s.Cap())
		}
	}
	if top, _ := s.Pop(); top != 99 {
		t.Errorf("Pop = %d, want 99", top)
	}
}

func TestBoundedCapacityOne(t *testing.T) {
	s := NewBounded[string](0)
	if s.Cap() != 1 {
		t.Fatalf("Cap = %d, want 1", s.Cap())
	}
	s.Push("a")
	old, evicted := s.Push("b")
	if !evicted || old != "a" {
		t.Errorf("Push(b) = %q,%v, want a,true", old, evicted)
	}
	v, _ := s.Pop()
	if v != "b" || !s.Empty() {
		t.Errorf("Pop = %q, empty=%v", v, s.Empty())
	}
	// Push after draining must relink head and tail.
	s.Push("c")
	if v, ok := s.Pop(); !ok || v != "c" || !s.Empty() {
		t.Errorf("Pop = %q,%v, want c,true", v, ok)
	}
}

func TestBoundedClear(t *testing.T) {
	s := NewBounded[int](5)
	s.Push(1)
	s.Push(2)
	s.Clear()
	if !s.Empty() || s.Len() != 0 {
		t.Error("Clear left elements behind")
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop after Clear returned ok")
	}
	s.Each(func(int) { t.Error("Each visited an element after Clear") })
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stack provides a bounded LIFO that evicts its oldest element on overflow.
package stack

// node is a node in a doubly-linked list.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// Bounded is a LIFO holding at most Cap() elements.
// The head is the most recently pushed element, the tail the oldest.
// Bounded is not thread-safe; callers must handle synchronization.
type Bounded[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
	cap  int
}

// NewBounded creates an empty stack with the given capacity.
// Capacities below 1 are raised to 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[T]{cap: capacity}
}

// Len returns the number of elements.
func (s *Bounded[T]) Len() int {
	return s.len
}

// Cap returns the maximum number of elements.
func (s *Bounded[T]) Cap() int {
	return s.cap
}

// Empty reports whether the stack holds no elements.
func (s *Bounded[T]) Empty() bool {
	return s.len == 0
}

// Push adds v on top. When the stack is full the oldest element is removed
// and returned with evicted=true.
func (s *Bounded[T]) Push(v T) (old T, evicted bool) {
	if s.len == s.cap {
		old, evicted = s.removeTail(), true
	}

	n := &node[T]{value: v}
	if s.head == nil {
		s.head = n
		s.tail = n
	} else {
		n.next = s.head
		s.head.prev = n
		s.head = n
	}
	s.len++
	return old, evicted
}

// Pop removes and returns the top element. ok is false when the stack is empty.
func (s *Bounded[T]) Pop() (v T, ok bool) {
	if s.head == nil {
		return v, false
	}
	n := s.head
	s.head = n.next
	if s.head == nil {
		s.tail = nil
	} else {
		s.head.prev = nil
	}
	s.len--
	n.next = nil
	return n.value, true
}

// Clear removes all elements.
func (s *Bounded[T]) Clear() {
	s.head = nil
	s.tail = nil
	s.len = 0
}

// Each calls fn for every element from top to bottom.
func (s *Bounded[T]) Each(fn func(T)) {
	for n := s.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// removeTail unlinks the oldest element. The stack must not be empty.
func (s *Bounded[T]) removeTail() T {
	n := s.tail
	s.tail = n.prev
	if s.tail == nil {
		s.head = nil
	} else {
		s.tail.next = nil
	}
	s.len--
	n.prev = nil
	return n.value
}

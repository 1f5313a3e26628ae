package middleware

import (
	"testing"
)

func TestMiddleware_Chain(t *testing.T) {
	type handler func(int) int

	add10 := func(h handler) handler {
		return func(n int) int {
			return h(n) + 10
		}
	}

	multiply2 := func(h handler) handler {
		return func(n int) int {
			return h(n) * 2
		}
	}

	base := func(n int) int {
		return n
	}

	chained := Chain(add10, multiply2)(base)
	result := chained(5)

	if result != 20 {
		t.Errorf("Expected 20, got %d", result)
	}
}

func TestMiddleware_ChainEmpty(t *testing.T) {
	type handler func(string) string

	base := func(s string) string {
		return s
	}

	chained := Chain[handler]()(base)
	result := chained("test")

	if result != "test" {
		t.Errorf("Expected 'test', got %s", result)
	}
}

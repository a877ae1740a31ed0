package document

import (
	"reflect"
	"testing"
)

func TestNode_NilSafety(t *testing.T) {
	var n *Node

	if n.Kind() != Absent {
		t.Errorf("Kind() = %v, want Absent", n.Kind())
	}

	if got := n.Get("anything"); got != nil {
		t.Errorf("Get on nil node = %v, want nil", got)
	}

	if got := n.Items(); got != nil {
		t.Errorf("Items on nil node = %v, want nil", got)
	}

	if got := n.Text(); got != "" {
		t.Errorf("Text on nil node = %q, want empty", got)
	}

	if got := n.Value(); got != nil {
		t.Errorf("Value on nil node = %v, want nil", got)
	}
}

func TestNode_GetChains(t *testing.T) {
	root := NewObject(map[string]*Node{
		"Outer": NewObject(map[string]*Node{
			"Inner": NewScalar("value"),
		}),
	})

	if got := root.Get("Outer").Get("Inner").Text(); got != "value" {
		t.Errorf("chained Get = %q, want value", got)
	}

	// Every link in a missing chain stays Absent without panicking.
	if got := root.Get("Missing").Get("Deeper").Get("Still").Value(); got != nil {
		t.Errorf("missing chain Value = %v, want nil", got)
	}
}

func TestNode_Items(t *testing.T) {
	scalar := NewScalar("one")
	list := NewList(NewScalar("a"), NewScalar("b"))

	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"absent", nil, 0},
		{"scalar wraps to one", scalar, 1},
		{"list passes through", list, 2},
		{"object wraps to one", NewObject(map[string]*Node{"K": scalar}), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.node.Items()); got != tt.want {
				t.Errorf("len(Items()) = %d, want %d", got, tt.want)
			}
		})
	}

	// Rewrapping the result as a list is a fixed point.
	once := list.Items()
	again := NewList(once...).Items()

	if !reflect.DeepEqual(once, again) {
		t.Errorf("Items not idempotent: %v vs %v", once, again)
	}
}

func TestNode_Keys(t *testing.T) {
	obj := NewObject(map[string]*Node{
		"zeta":  NewScalar("1"),
		"alpha": NewScalar("2"),
		"@attr": NewScalar("3"),
	})

	want := []string{"@attr", "alpha", "zeta"}
	if got := obj.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if got := NewScalar("x").Keys(); got != nil {
		t.Errorf("Keys on scalar = %v, want nil", got)
	}
}

func TestNode_Value(t *testing.T) {
	if got := NewScalar("text").Value(); got != "text" {
		t.Errorf("Value() = %v, want text", got)
	}

	if got := NewList().Value(); got != nil {
		t.Errorf("Value on list = %v, want nil", got)
	}
}

package inputmap

import (
	"testing"

	"github.com/gitwatch/gitwatch/internal/types"
)

func TestSingleKeyBinding(t *testing.T) {
	m := New[string, int]()
	m.Add([]types.Input{types.Letter('S')}, func(ctx string) int { return len(ctx) })

	node := m.Root().Get(types.Letter('S'))
	if node == nil {
		t.Fatal("Get(S) = nil, want a node")
	}
	h := node.Handler()
	if h == nil {
		t.Fatal("Handler() = nil, want the bound handler")
	}
	if got := h("hello"); got != 5 {
		t.Fatalf("handler(\"hello\") = %d, want 5", got)
	}
}

func TestChordSequenceRequiresBothKeys(t *testing.T) {
	m := New[struct{}, string]()
	m.Add([]types.Input{types.Letter('C'), types.Letter('C')}, func(struct{}) string { return "commit" })

	first := m.Root().Get(types.Letter('C'))
	if first == nil {
		t.Fatal("first C did not create an intermediate node")
	}
	if first.Handler() != nil {
		t.Fatal("intermediate node should have no handler")
	}

	second := first.Get(types.Letter('C'))
	if second == nil {
		t.Fatal("second C did not reach the terminal node")
	}
	if second.Handler() == nil {
		t.Fatal("terminal node has no handler")
	}
}

func TestGetMissReturnsNil(t *testing.T) {
	m := New[struct{}, struct{}]()
	m.Add([]types.Input{types.Letter('S')}, func(struct{}) struct{} { return struct{}{} })

	if node := m.Root().Get(types.Letter('X')); node != nil {
		t.Fatalf("Get(X) = %v, want nil", node)
	}
}

func TestReAddOverwritesHandler(t *testing.T) {
	m := New[struct{}, int]()
	m.Add([]types.Input{types.Letter('S')}, func(struct{}) int { return 1 })
	m.Add([]types.Input{types.Letter('S')}, func(struct{}) int { return 2 })

	h := m.Root().Get(types.Letter('S')).Handler()
	if got := h(struct{}{}); got != 2 {
		t.Fatalf("handler() = %d, want 2 (re-add should overwrite)", got)
	}
}

func TestDistinctSequencesDoNotCollide(t *testing.T) {
	m := New[struct{}, string]()
	m.Add([]types.Input{types.Letter('S')}, func(struct{}) string { return "stage" })
	m.Add([]types.Input{types.Letter('C'), types.Letter('C')}, func(struct{}) string { return "commit" })

	sNode := m.Root().Get(types.Letter('S'))
	if sNode == nil || sNode.Handler() == nil {
		t.Fatal("single-key binding lost after adding a chord")
	}
	if got := sNode.Handler()(struct{}{}); got != "stage" {
		t.Fatalf("S handler = %q, want %q", got, "stage")
	}
}

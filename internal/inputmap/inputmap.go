// Package inputmap implements a prefix trie over key-sequences ("chords"),
// so a handler can be bound to a single key or to a sequence like "C, C"
// for commit. It is parametric over the context a handler receives (Ctx)
// and the result type it returns (Res) so the same trie shape drives both
// BaseState (which returns engine.Result) and InputModalState's own
// internal dispatch, if one is ever needed.
package inputmap

import "github.com/gitwatch/gitwatch/internal/types"

// Handler is invoked once a bound sequence has been fully matched.
type Handler[Ctx, Res any] func(Ctx) Res

// Node is one position in the trie: the children reachable from here by
// one more Input, and the Handler bound at this exact position, if any.
type Node[Ctx, Res any] struct {
	children map[types.Input]*Node[Ctx, Res]
	handler  Handler[Ctx, Res]
}

// Map is the root of an InputMap.
type Map[Ctx, Res any] struct {
	root *Node[Ctx, Res]
}

// New returns an empty Map.
func New[Ctx, Res any]() *Map[Ctx, Res] {
	return &Map[Ctx, Res]{root: newNode[Ctx, Res]()}
}

func newNode[Ctx, Res any]() *Node[Ctx, Res] {
	return &Node[Ctx, Res]{children: make(map[types.Input]*Node[Ctx, Res])}
}

// Add binds handler to sequence, walking from the root and creating any
// missing nodes along the way. Re-adding a sequence overwrites its handler.
func (m *Map[Ctx, Res]) Add(sequence []types.Input, handler Handler[Ctx, Res]) {
	n := m.root
	for _, in := range sequence {
		child, ok := n.children[in]
		if !ok {
			child = newNode[Ctx, Res]()
			n.children[in] = child
		}
		n = child
	}
	n.handler = handler
}

// Root returns the root node, the starting point for a caller-maintained
// "current map" cursor.
func (m *Map[Ctx, Res]) Root() *Node[Ctx, Res] {
	return m.root
}

// Get returns the child reached by following one more Input from n, or nil
// on a miss.
func (n *Node[Ctx, Res]) Get(in types.Input) *Node[Ctx, Res] {
	return n.children[in]
}

// Handler returns the handler bound at n, or nil if n is not terminal.
func (n *Node[Ctx, Res]) Handler() Handler[Ctx, Res] {
	return n.handler
}

package engine

import "testing"

// fakeState is a minimal State whose behavior is scripted per test.
type fakeState struct {
	name       string
	paintCalls *[]string
	handleFn   func(*HandleCtx, Event) Result
	deinited   *bool
}

func (f *fakeState) Paint(ctx *PaintCtx) {
	if f.paintCalls != nil {
		*f.paintCalls = append(*f.paintCalls, f.name)
	}
	ctx.SetOutput(ctx.Output() + f.name)
}

func (f *fakeState) Handle(hctx *HandleCtx, ev Event) Result {
	if f.handleFn != nil {
		return f.handleFn(hctx, ev)
	}
	return Pass()
}

func (f *fakeState) Deinit() {
	if f.deinited != nil {
		*f.deinited = true
	}
}

func TestStackPaintsBottomToTop(t *testing.T) {
	var order []string
	base := &fakeState{name: "base", paintCalls: &order}
	top := &fakeState{name: "top", paintCalls: &order}
	s := NewStack(base)
	s.states = append(s.states, top)

	ctx := &PaintCtx{}
	s.Paint(ctx)

	if len(order) != 2 || order[0] != "base" || order[1] != "top" {
		t.Fatalf("paint order = %v, want [base top]", order)
	}
	if ctx.Output() != "basetop" {
		t.Fatalf("Output() = %q, want %q", ctx.Output(), "basetop")
	}
}

func TestStackDispatchPassFallsThroughToBase(t *testing.T) {
	baseCalled := false
	base := &fakeState{name: "base", handleFn: func(*HandleCtx, Event) Result {
		baseCalled = true
		return Stop()
	}}
	top := &fakeState{name: "top", handleFn: func(*HandleCtx, Event) Result {
		return Pass()
	}}
	s := NewStack(base)
	s.states = append(s.states, top)

	exit := s.Dispatch(&HandleCtx{}, Event{})
	if exit {
		t.Fatal("Dispatch reported exit, want false")
	}
	if !baseCalled {
		t.Fatal("base.Handle never called; ResultPass should fall through")
	}
}

func TestStackDispatchStopDoesNotReachBase(t *testing.T) {
	baseCalled := false
	base := &fakeState{name: "base", handleFn: func(*HandleCtx, Event) Result {
		baseCalled = true
		return Stop()
	}}
	top := &fakeState{name: "top", handleFn: func(*HandleCtx, Event) Result {
		return Stop()
	}}
	s := NewStack(base)
	s.states = append(s.states, top)

	s.Dispatch(&HandleCtx{}, Event{})
	if baseCalled {
		t.Fatal("base.Handle called; ResultStop at top should stop the walk")
	}
}

func TestStackDispatchPush(t *testing.T) {
	base := &fakeState{name: "base"}
	pushed := &fakeState{name: "pushed"}
	base.handleFn = func(*HandleCtx, Event) Result { return Push(pushed) }

	s := NewStack(base)
	s.Dispatch(&HandleCtx{}, Event{})

	if len(s.states) != 2 {
		t.Fatalf("len(states) = %d, want 2", len(s.states))
	}
	if s.Top() != pushed {
		t.Fatal("Top() is not the pushed state")
	}
}

func TestStackDispatchPopDeinitsAndRemovesTop(t *testing.T) {
	base := &fakeState{name: "base"}
	deinited := false
	top := &fakeState{name: "top", deinited: &deinited, handleFn: func(*HandleCtx, Event) Result {
		return Pop()
	}}
	s := NewStack(base)
	s.states = append(s.states, top)

	s.Dispatch(&HandleCtx{}, Event{})

	if len(s.states) != 1 {
		t.Fatalf("len(states) = %d, want 1 after pop", len(s.states))
	}
	if !deinited {
		t.Fatal("popped state was not Deinit()ed")
	}
}

func TestStackPopNeverRemovesBase(t *testing.T) {
	base := &fakeState{name: "base"}
	s := NewStack(base)
	s.pop()
	s.pop()

	if len(s.states) != 1 || s.Top() != base {
		t.Fatal("pop() removed the base state")
	}
}

func TestStackDispatchExit(t *testing.T) {
	base := &fakeState{name: "base", handleFn: func(*HandleCtx, Event) Result {
		return Exit()
	}}
	s := NewStack(base)

	if exit := s.Dispatch(&HandleCtx{}, Event{}); !exit {
		t.Fatal("Dispatch did not report exit for ResultExit")
	}
}

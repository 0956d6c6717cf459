package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// This module implements a stack of call frames.
// Call frames are used by an interpreter to keep track of active
// function calls.

// Frame is a call frame, representing an active call of a function. It links to
// the scope the function's parameters are bound in.
type Frame struct {
	Name  string
	Scope *Scope
}

func (f *Frame) String() string {
	return fmt.Sprintf("<frame %s -> %v>", f.Name, f.Scope)
}

// CallStack is a stack of call frames.
type CallStack struct {
	frames *arraystack.Stack
}

// NewCallStack creates an empty call stack.
func NewCallStack() *CallStack {
	return &CallStack{frames: arraystack.New()}
}

// Depth returns the number of active frames.
func (cs *CallStack) Depth() int {
	return cs.frames.Size()
}

// Current gets the current frame of a stack (TOS), or nil if no call is active.
func (cs *CallStack) Current() *Frame {
	f, ok := cs.frames.Peek()
	if !ok {
		return nil
	}
	return f.(*Frame)
}

// Push pushes a new frame as TOS.
func (cs *CallStack) Push(nm string, scope *Scope) *Frame {
	f := &Frame{Name: nm, Scope: scope}
	cs.frames.Push(f)
	tracer().P("call", nm).Debugf("pushing call frame, depth %d", cs.frames.Size())
	return f
}

// Pop pops the top-most frame. Returns the popped frame.
func (cs *CallStack) Pop() *Frame {
	f, ok := cs.frames.Pop()
	if !ok {
		panic("attempt to pop frame from empty call stack")
	}
	tracer().Debugf("popping call frame [%s]", f.(*Frame).Name)
	return f.(*Frame)
}

// FindFrameForScope finds the top-most frame pointing to scope.
func (cs *CallStack) FindFrameForScope(scope *Scope) *Frame {
	for _, f := range cs.frames.Values() { // LIFO order
		if f.(*Frame).Scope == scope {
			return f.(*Frame)
		}
	}
	return nil
}

// Names returns the names of all active frames, innermost first.
func (cs *CallStack) Names() []string {
	values := cs.frames.Values()
	names := make([]string, len(values))
	for i, f := range values {
		names[i] = f.(*Frame).Name
	}
	return names
}

package host

import "context"

// Action is an invocable host capability.
type Action interface {
	Perform(ctx context.Context)
}

// ContextAware actions can be bound to extra data before invocation.
type ContextAware interface {
	Action
	WithContext(Lookup) Action
}

// Enabler is implemented by actions that report their own enabled state.
type Enabler interface {
	Enabled() bool
}

// Described is implemented by actions that carry a short description.
type Described interface {
	Description() string
}

// Capabilities is the host's generic action lookup by category and identifier.
type Capabilities interface {
	ForID(category, id string) (Action, bool)
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ctx context.Context)

// Perform calls f.
func (f ActionFunc) Perform(ctx context.Context) {
	if f != nil {
		f(ctx)
	}
}

// NoOp is an action that does nothing.
var NoOp Action = ActionFunc(func(context.Context) {})

// Lookup is a fixed set of context objects bound to a context-aware action.
type Lookup struct {
	items []any
}

// Fixed builds a Lookup holding items in order.
func Fixed(items ...any) Lookup {
	dup := make([]any, 0, len(items))
	for _, item := range items {
		if item != nil {
			dup = append(dup, item)
		}
	}
	return Lookup{items: dup}
}

// Len reports how many objects the lookup holds.
func (l Lookup) Len() int {
	return len(l.items)
}

// LookupOf returns the first object in l assignable to T.
func LookupOf[T any](l Lookup) (T, bool) {
	for _, item := range l.items {
		if v, ok := item.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Bind returns action bound to ctx when it is context aware, or action
// unchanged otherwise.
func Bind(action Action, ctx Lookup) Action {
	if aware, ok := action.(ContextAware); ok {
		return aware.WithContext(ctx)
	}
	return action
}

// IsEnabled reports the action's enabled state; actions without an Enabler
// are treated as enabled.
func IsEnabled(action Action) bool {
	if action == nil {
		return false
	}
	if e, ok := action.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

package assistant

import "sync"

// Order accumulates the item identifiers a session has ordered, in the order
// they were matched. Duplicates are allowed: ordering the same item twice,
// in one utterance or across turns, increases the count. One Order belongs
// to exactly one session; the mutex serializes appends if a deployment lets
// concurrent requests share a session.
type Order struct {
	mu    sync.Mutex
	items []string
}

func NewOrder() *Order {
	return &Order{}
}

func (o *Order) Add(names ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, names...)
}

// Items returns a copy of the accumulated identifiers.
func (o *Order) Items() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.items)
}

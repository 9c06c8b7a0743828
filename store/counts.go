package store

import "encoding/json"

// Counts maps product ids to positive counts and remembers the order in which ids were first added.
// Values are never mutated in place; With returns an updated copy.
type Counts struct {
	order []string
	n     map[string]int
}

func (c Counts) Get(id string) int {
	return c.n[id]
}

func (c Counts) Len() int {
	return len(c.order)
}

// Keys returns the ids, oldest first.
func (c Counts) Keys() []string {
	return append([]string(nil), c.order...)
}

// First returns the oldest id still present.
func (c Counts) First() (string, bool) {
	if len(c.order) == 0 {
		return "", false
	}
	return c.order[0], true
}

func (c Counts) Sum() int {
	total := 0
	for _, v := range c.n {
		total += v
	}
	return total
}

// With returns a copy with delta added to id. Ids that drop to zero or below are removed;
// an id that comes back later is treated as new and goes to the end of the order.
func (c Counts) With(id string, delta int) Counts {
	current, present := c.n[id]
	next := current + delta

	out := c.clone()
	switch {
	case next <= 0:
		if !present {
			return c
		}
		delete(out.n, id)
		for i, key := range out.order {
			if key == id {
				out.order = append(out.order[:i], out.order[i+1:]...)
				break
			}
		}
	case present:
		out.n[id] = next
	default:
		out.n[id] = next
		out.order = append(out.order, id)
	}
	return out
}

// Map returns a plain copy of the counts.
func (c Counts) Map() map[string]int {
	out := make(map[string]int, len(c.n))
	for k, v := range c.n {
		out[k] = v
	}
	return out
}

func (c Counts) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

func (c Counts) clone() Counts {
	return Counts{
		order: append(make([]string, 0, len(c.order)+1), c.order...),
		n:     c.Map(),
	}
}

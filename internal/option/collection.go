package option

// Collection is an insertion-ordered registry of options. The index maps
// every name and alias to a position in the backing slice, so lookups by
// either spelling cost the same.
type Collection struct {
	opts  []*Option
	index map[string]int
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		index: make(map[string]int),
	}
}

// Add registers an option. It returns a *DuplicateError if the option's
// name or any of its aliases collides with an entry already in the
// collection, or with another spelling of the option itself; the
// collection is left untouched on failure.
func (c *Collection) Add(opt *Option) error {
	keys := append([]string{opt.Name}, opt.Aliases...)
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := c.index[key]; ok {
			return &DuplicateError{Name: key}
		}
		if _, ok := seen[key]; ok {
			return &DuplicateError{Name: key}
		}
		seen[key] = struct{}{}
	}

	pos := len(c.opts)
	c.opts = append(c.opts, opt)
	for _, key := range keys {
		c.index[key] = pos
	}
	return nil
}

// Find returns the option whose name or alias equals query, or a
// *NotFoundError when nothing is registered under that identifier.
func (c *Collection) Find(query string) (*Option, error) {
	pos, ok := c.index[query]
	if !ok {
		return nil, &NotFoundError{Query: query}
	}
	return c.opts[pos], nil
}

// Has reports whether any option answers to the given identifier.
func (c *Collection) Has(query string) bool {
	_, ok := c.index[query]
	return ok
}

// SetValueIfExists resolves the value of the option matching name. It is
// a silent no-op when no option matches: flags the user typed that were
// never registered are tolerated rather than rejected.
func (c *Collection) SetValueIfExists(name string, value any) {
	pos, ok := c.index[name]
	if !ok {
		return
	}
	c.opts[pos].Value = value
}

// All returns the registered options in insertion order. The slice is a
// copy; the options themselves are shared.
func (c *Collection) All() []*Option {
	out := make([]*Option, len(c.opts))
	copy(out, c.opts)
	return out
}

// Len returns the number of registered options.
func (c *Collection) Len() int {
	return len(c.opts)
}

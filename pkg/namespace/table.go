package namespace

// Mode selects where a new binding lands in a mountpoint's union chain.
type Mode int

const (
	// ModeReplace removes every existing binding at the mountpoint.
	ModeReplace Mode = iota
	// ModeBefore puts the new binding at the front of the chain, so it is
	// searched first.
	ModeBefore
	// ModeAfter appends the new binding, so it is searched last.
	ModeAfter
)

func (m Mode) String() string {
	switch m {
	case ModeBefore:
		return "before"
	case ModeAfter:
		return "after"
	default:
		return "replace"
	}
}

// Flag returns the bind flag that recreates this mode, or "" for replace.
func (m Mode) Flag() string {
	switch m {
	case ModeBefore:
		return "-b"
	case ModeAfter:
		return "-a"
	default:
		return ""
	}
}

// Binding is one source->mountpoint association. The table owns its
// bindings; callers must not mutate a returned Binding.
type Binding struct {
	From string
	To   string
	Mode Mode
}

// Table is the bind table: canonical mountpoint -> union chain of bindings.
// Index 0 of a chain is searched first.
type Table struct {
	chains map[string][]*Binding
	count  int
}

func NewTable() *Table {
	return &Table{chains: make(map[string][]*Binding)}
}

// Len returns the number of live bindings across all mountpoints.
func (t *Table) Len() int { return t.count }

// Add inserts a binding. From and to must already be canonical; callers
// canonicalize so that Resolve's exact-key match lines up with what was
// stored. Returns the created binding.
func (t *Table) Add(from, to string, mode Mode) *Binding {
	b := &Binding{From: from, To: to, Mode: mode}
	chain := t.chains[to]
	switch {
	case len(chain) == 0:
		t.chains[to] = []*Binding{b}
	case mode == ModeBefore:
		t.chains[to] = append([]*Binding{b}, chain...)
	case mode == ModeAfter:
		t.chains[to] = append(chain, b)
	default: // replace
		t.count -= len(chain)
		t.chains[to] = []*Binding{b}
	}
	t.count++
	return b
}

// Remove deletes bindings at mountpoint to. With a non-empty from, at most
// the one binding matching both fields exactly is removed; with from == ""
// every binding at to is removed. Reports whether anything was removed.
func (t *Table) Remove(from, to string) bool {
	chain, ok := t.chains[to]
	if !ok {
		return false
	}
	if from == "" {
		t.count -= len(chain)
		delete(t.chains, to)
		return true
	}
	for i, b := range chain {
		if b.From == from {
			chain = append(chain[:i], chain[i+1:]...)
			t.count--
			if len(chain) == 0 {
				delete(t.chains, to)
			} else {
				t.chains[to] = chain
			}
			return true
		}
	}
	return false
}

// Find returns the highest-priority binding for an exact mountpoint match,
// or nil. No prefix matching is done.
func (t *Table) Find(to string) *Binding {
	if chain := t.chains[to]; len(chain) > 0 {
		return chain[0]
	}
	return nil
}

// Resolve translates a path through the table. The path is canonicalized
// for the lookup; on a hit the first binding's source is returned, otherwise
// the original input comes back unchanged. Resolution is single-hop: paths
// nested beneath a bound directory are not translated.
func (t *Table) Resolve(path string) string {
	if b := t.Find(Canonical(path)); b != nil {
		return b.From
	}
	return path
}

// Clear releases every binding. The table stays usable.
func (t *Table) Clear() {
	t.chains = make(map[string][]*Binding)
	t.count = 0
}

package namespace

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Walk visits every binding in rendering order: mountpoints sorted
// lexically, then chain entries in union-search order. The C original
// iterated hash buckets, which gave an arbitrary but stable order; sorting
// keeps the output stable across runs now that the index is a Go map.
func (t *Table) Walk(fn func(*Binding)) {
	keys := make([]string, 0, len(t.chains))
	for k := range t.chains {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, b := range t.chains[k] {
			fn(b)
		}
	}
}

// Render writes the namespace to w. The plain form prints source,
// mountpoint and a priority label per binding; the recreate form prints a
// bind invocation that would rebuild the entry.
func (t *Table) Render(w io.Writer, recreate bool) {
	t.Walk(func(b *Binding) {
		if recreate {
			flag := b.Mode.Flag()
			if flag != "" {
				flag += " "
			}
			fmt.Fprintf(w, "bind %s%s %s\n", flag, b.From, b.To)
		} else {
			fmt.Fprintf(w, "%s\t%s\t(%s)\n", b.From, b.To, b.Mode)
		}
	})
}

// SystemMounts dumps the OS mount table to w, for situational awareness
// when the bind table is empty. Returns an error if the system listing is
// unreadable; the caller may then fall back to an external mount command.
func SystemMounts(w io.Writer) error {
	data, err := os.ReadFile("/proc/mounts")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "# system mounts:")
	_, err = w.Write(data)
	return err
}

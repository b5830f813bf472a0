// Package schema binds pieces of a file layout to the state they carry.
//
// A binding is either a raw copy between one piece and a fixed-size value or
// array, a delegation to a collaborator codec that consumes one or more
// pieces, or a reserved region that is skipped in both directions. Bindings run
// in the order given, which is the processing order and may differ from the
// declared piece order.
package schema

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/arloliu/citysave/buffer"
	"github.com/arloliu/citysave/piece"
)

type Kind uint8

const (
	RawCopy Kind = iota + 1
	Delegated
	Reserved
)

func (k Kind) String() string {
	switch k {
	case RawCopy:
		return "raw"
	case Delegated:
		return "delegated"
	case Reserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// StateFunc moves state into or out of the cursors of a binding's pieces,
// given in the order the binding names them.
type StateFunc func(cursors []*buffer.Cursor) error

// Binding connects one or more pieces to state.
type Binding struct {
	Kind   Kind
	Pieces []string
	load   StateFunc
	save   StateFunc
}

// Raw binds a single fixed-width value.
func Raw[T buffer.Integer](name string, v *T) Binding {
	return RawSlice(name, unsafe.Slice(v, 1))
}

// RawSlice binds a fixed-length array of integers; its byte length should
// equal the piece size.
func RawSlice[T buffer.Integer](name string, s []T) Binding {
	return Binding{
		Kind:   RawCopy,
		Pieces: []string{name},
		load:   func(c []*buffer.Cursor) error { return buffer.ReadInts(c[0], s) },
		save:   func(c []*buffer.Cursor) error { return buffer.WriteInts(c[0], s) },
	}
}

// Reserve marks a piece whose bytes are carried but not interpreted.
func Reserve(name string) Binding {
	skip := func(c []*buffer.Cursor) error { return c[0].Skip(c[0].Remaining()) }

	return Binding{Kind: Reserved, Pieces: []string{name}, load: skip, save: skip}
}

// Delegate hands the named pieces to a collaborator codec.
func Delegate(names []string, load, save StateFunc) Binding {
	return Binding{Kind: Delegated, Pieces: names, load: load, save: save}
}

// Resolver looks up pieces by name.
type Resolver interface {
	Get(name string) (*piece.Piece, error)
}

// Load runs every binding's load side in order.
func Load(r Resolver, bindings []Binding) error {
	return run(r, bindings, func(b Binding) StateFunc { return b.load })
}

// Save runs every binding's save side in order.
func Save(r Resolver, bindings []Binding) error {
	return run(r, bindings, func(b Binding) StateFunc { return b.save })
}

func run(r Resolver, bindings []Binding, pick func(Binding) StateFunc) error {
	cursors := make([]*buffer.Cursor, 0, 4)
	for _, b := range bindings {
		cursors = cursors[:0]
		for _, name := range b.Pieces {
			p, err := r.Get(name)
			if err != nil {
				return err
			}
			cursors = append(cursors, p.Cursor)
		}

		if err := pick(b)(cursors); err != nil {
			return errors.WithMessagef(err, "%s binding %v", b.Kind, b.Pieces)
		}
		for i, c := range cursors {
			if err := c.Err(); err != nil {
				return errors.WithMessagef(err, "%s binding %s", b.Kind, b.Pieces[i])
			}
		}
	}

	return nil
}

// Coverage compares bindings against a layout. It returns the layout pieces no
// binding consumes, those consumed more than once, and bound names the layout
// does not declare.
func Coverage(layout []piece.Spec, bindings []Binding) (missing, repeated, unknown []string) {
	seen := make(map[string]int, len(layout))
	for _, b := range bindings {
		for _, name := range b.Pieces {
			seen[name]++
		}
	}
	for _, s := range layout {
		switch n := seen[s.Name]; {
		case n == 0:
			missing = append(missing, s.Name)
		case n > 1:
			repeated = append(repeated, s.Name)
		}
		delete(seen, s.Name)
	}
	for name := range seen {
		unknown = append(unknown, name)
	}

	return missing, repeated, unknown
}

package errno

import (
	"fmt"
	"io"
)

// Default identifier names in the emitted code, matching the ioerr header
// that includes errnos.inc.
const (
	DefaultType  = "ioerr"
	DefaultEntry = "e"
)

// Emitter renders generated source for a set of entries. Type is the error
// type the declarations belong to; Entry is the initializer name used in the
// table body.
type Emitter struct {
	Type  string
	Entry string
}

// NewEmitter returns an emitter with the default identifier names.
func NewEmitter() Emitter {
	return Emitter{Type: DefaultType, Entry: DefaultEntry}
}

// WriteDecls emits one forward declaration per entry.
func (em Emitter) WriteDecls(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "static const %s %s;\n", em.Type, TitleCase(e.Name)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDefs emits one constant definition per entry, binding the title-cased
// identifier to its numeric value.
func (em Emitter) WriteDefs(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "constexpr %s %s::%s(%d);\n", em.Type, em.Type, TitleCase(e.Name), e.Number); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable emits the dense initializer table: one slot per integer from 0
// through the highest entry number, with empty placeholders filling unused
// slots. The body is written twice in sequence; the consuming errnos.inc
// contains both copies and downstream builds depend on that shape.
func (em Emitter) WriteTable(w io.Writer, entries []Entry) error {
	if err := em.writeTableBody(w, entries); err != nil {
		return err
	}
	return em.writeTableBody(w, entries)
}

func (em Emitter) writeTableBody(w io.Writer, entries []Entry) error {
	next := 0
	for _, e := range entries {
		for ; next < e.Number; next++ {
			if _, err := fmt.Fprintf(w, "/*%04d*/ %s{},\n", next, em.Entry); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "/*%04d*/ %s{%q, %q},\n", next, em.Entry, e.Name, e.Message); err != nil {
			return err
		}
		next++
	}
	return nil
}

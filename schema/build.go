package schema

// Overrides names the fields a run promotes to required: a set of root
// attribute names plus per-kind sets of column attribute names. Names that
// do not exist on the target are ignored.
type Overrides struct {
	Root   []string
	Column map[string][]string
}

// Model is the dataset-schema descriptor for one run. It is immutable after
// Build and safe for concurrent use.
type Model struct {
	root    []Field
	columns map[Kind][]Field
}

// Build composes the run-scoped model. Fields not named in ov keep their
// base optionality and defaults exactly; named fields become required while
// keeping their declared type, nullability and documentation.
func Build(ov Overrides) *Model {
	m := &Model{
		root:    promote(rootFields(), ov.Root),
		columns: make(map[Kind][]Field, len(Kinds)),
	}
	for _, k := range Kinds {
		fields := append(columnBaseFields(), columnExtraFields(k)...)
		m.columns[k] = promote(fields, ov.Column[string(k)])
	}
	return m
}

func promote(fields []Field, names []string) []Field {
	if len(names) == 0 {
		return fields
	}
	required := make(map[string]struct{}, len(names))
	for _, n := range names {
		required[n] = struct{}{}
	}
	for i := range fields {
		if _, ok := required[fields[i].Name]; ok {
			fields[i].Required = true
			fields[i].Default = nil
		}
	}
	return fields
}

// RootFields exposes the built root descriptors in declaration order.
func (m *Model) RootFields() []Field {
	out := make([]Field, len(m.root))
	copy(out, m.root)
	return out
}

// ColumnFields exposes the built descriptors for one column kind, base
// attributes first, in declaration order.
func (m *Model) ColumnFields(k Kind) []Field {
	out := make([]Field, len(m.columns[k]))
	copy(out, m.columns[k])
	return out
}

// Package schema defines the canonical dataset-schema model and validates
// parsed JSON/YAML trees against it. A Model is built once per run from the
// base field descriptors plus the run's required-attribute overrides, then
// used as a pure structural validator.
package schema

// Kind names the six column variants. The kind is selected by the "type"
// discriminator field on each column object.
type Kind string

const (
	KindString   Kind = "string"
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindBoolean  Kind = "boolean"
	KindDate     Kind = "date"
	KindDatetime Kind = "datetime"
)

// Kinds lists the supported column kinds in canonical order.
var Kinds = []Kind{KindString, KindInteger, KindFloat, KindBoolean, KindDate, KindDatetime}

// Discriminator is the column field selecting the variant.
const Discriminator = "type"

// IsKind reports whether s names one of the supported column kinds.
func IsKind(s string) bool {
	for _, k := range Kinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// ValueType enumerates the primitive shapes a declared field may take.
type ValueType int

const (
	StringValue ValueType = iota
	IntValue
	FloatValue
	BoolValue
	StringListValue
	ObjectValue
	ColumnListValue
)

// Field describes one declared attribute of the root schema or of a column
// variant. AllowNull tracks whether the base declaration is optional-typed;
// it is independent of Required, so a promoted field keeps accepting null.
type Field struct {
	Name      string
	Type      ValueType
	Required  bool
	AllowNull bool
	Default   any
	Doc       string
}

// rootFields returns the root dataset-schema descriptors in declaration
// order. fqn presence is not enforced here by default; runs that want it
// promote it via overrides, and the uniqueness rule polices it across a
// batch.
func rootFields() []Field {
	return []Field{
		{Name: "fqn", Type: StringValue, AllowNull: true,
			Doc: "fully qualified name of the dataset schema, typically 'namespace.dataset_name'"},
		{Name: "name", Type: StringValue, Required: true,
			Doc: "name identifying this dataset schema"},
		{Name: "description", Type: StringValue, AllowNull: true,
			Doc: "description of the dataset's purpose and content"},
		{Name: "version", Type: StringValue, Default: "1.0",
			Doc: "schema version tracking schema evolution"},
		{Name: "columns", Type: ColumnListValue, Required: true,
			Doc: "ordered column definitions making up the dataset structure"},
		{Name: "metadata", Type: ObjectValue, AllowNull: true,
			Doc: "additional schema-level information"},
		{Name: "tags", Type: StringListValue, AllowNull: true,
			Doc: "keywords for categorization and search"},
		{Name: "depends_on", Type: StringListValue, AllowNull: true,
			Doc: "paths of schema files this dataset depends on"},
		{Name: "dependents", Type: StringListValue, AllowNull: true,
			Doc: "paths of schema files depending on this dataset"},
	}
}

// columnBaseFields returns the attributes shared by every column variant.
func columnBaseFields() []Field {
	return []Field{
		{Name: "name", Type: StringValue, Required: true,
			Doc: "unique identifier for the column within the dataset"},
		{Name: "unique", Type: BoolValue, Default: false,
			Doc: "whether column values must be unique across rows"},
		{Name: "primary_key", Type: BoolValue, Default: false,
			Doc: "whether this column is the dataset primary key"},
		{Name: "nullable", Type: BoolValue, Default: true,
			Doc: "whether the column may contain null values"},
		{Name: "description", Type: StringValue, AllowNull: true,
			Doc: "human-readable description of the column"},
	}
}

// columnExtraFields returns the variant-specific attributes, in declaration
// order, for the given kind.
func columnExtraFields(k Kind) []Field {
	switch k {
	case KindString:
		return []Field{
			{Name: "max_length", Type: IntValue, AllowNull: true, Doc: "maximum string length"},
			{Name: "min_length", Type: IntValue, AllowNull: true, Doc: "minimum string length"},
			{Name: "pattern", Type: StringValue, AllowNull: true, Doc: "regular expression values must match"},
		}
	case KindInteger:
		return []Field{
			{Name: "minimum", Type: IntValue, AllowNull: true, Doc: "minimum allowed value (inclusive)"},
			{Name: "maximum", Type: IntValue, AllowNull: true, Doc: "maximum allowed value (inclusive)"},
		}
	case KindFloat:
		return []Field{
			{Name: "minimum", Type: FloatValue, AllowNull: true, Doc: "minimum allowed value (inclusive)"},
			{Name: "maximum", Type: FloatValue, AllowNull: true, Doc: "maximum allowed value (inclusive)"},
			{Name: "precision", Type: IntValue, AllowNull: true, Doc: "decimal places to maintain"},
		}
	case KindBoolean:
		return nil
	case KindDate:
		return []Field{
			{Name: "format", Type: StringValue, AllowNull: true, Default: "YYYY-MM-DD", Doc: "expected date format"},
		}
	case KindDatetime:
		return []Field{
			{Name: "format", Type: StringValue, AllowNull: true, Default: "YYYY-MM-DD HH:MM:SS", Doc: "expected datetime format"},
			{Name: "timezone", Type: StringValue, AllowNull: true, Doc: "timezone identifier for interpretation"},
		}
	}
	return nil
}

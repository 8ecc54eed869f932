package log

import "fmt"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldPipeline  = "pipeline"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldInput     = "input"
	FieldOutput    = "output"
	FieldURL       = "url"
	FieldLine      = "line"
	FieldField     = "field"
	FieldValue     = "value"
	FieldRow       = "row"
	FieldCategory  = "category"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldDuration  = "duration_ms"
	FieldStatus    = "status_code"
	FieldBytes     = "bytes"
)

// Components defines standard component names
const (
	ComponentApp         = "app"
	ComponentCLI         = "cli"
	ComponentTabular     = "tabular"
	ComponentSpreadsheet = "spreadsheet"
	ComponentFetch       = "fetch"
	ComponentLeague      = "league"
	ComponentText        = "text"
	ComponentReport      = "report"
	ComponentRunner      = "runner"
)

// Operations defines standard operation names
const (
	OpRead      = "read"
	OpParse     = "parse"
	OpAggregate = "aggregate"
	OpRank      = "rank"
	OpLookup    = "lookup"
	OpCount     = "count"
	OpFetch     = "fetch"
	OpClean     = "clean"
	OpWrite     = "write"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRow adds the location and contents of a data row
func (f LogFields) WithRow(line int, values []string) LogFields {
	f[FieldLine] = line
	f[FieldRow] = fmt.Sprintf("%q", values)
	return f
}

// WithPaths adds input and output paths
func (f LogFields) WithPaths(input, output string) LogFields {
	if input != "" {
		f[FieldInput] = input
	}
	if output != "" {
		f[FieldOutput] = output
	}
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}

// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry exposes errorEntry fields to the external test package.
type ErrorEntry = errorEntry

// Message returns the entry message.
func (e errorEntry) Message() string { return e.message }

// MetadataFields returns the sorted key=value pairs of the entry.
func (e errorEntry) MetadataFields() []string { return e.metadata }

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

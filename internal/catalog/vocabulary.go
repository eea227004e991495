package catalog

// JDL field types.
const (
	String        = "String"
	Integer       = "Integer"
	Long          = "Long"
	Float         = "Float"
	Double        = "Double"
	BigDecimal    = "BigDecimal"
	LocalDate     = "LocalDate"
	Instant       = "Instant"
	ZonedDateTime = "ZonedDateTime"
	Boolean       = "Boolean"
	Enumeration   = "Enumeration"
	Blob          = "Blob"
)

var vocabulary = map[string]struct{}{
	String:        {},
	Integer:       {},
	Long:          {},
	Float:         {},
	Double:        {},
	BigDecimal:    {},
	LocalDate:     {},
	Instant:       {},
	ZonedDateTime: {},
	Boolean:       {},
	Enumeration:   {},
	Blob:          {},
}

// IsJDLType reports whether name belongs to the closed JDL type vocabulary.
func IsJDLType(name string) bool {
	_, ok := vocabulary[name]
	return ok
}

package catalog

// Sentinels used by the spreadsheet corpus. Localize here.
const (
	// NonEntityMarker flags class-name cells that are annotations, not entities.
	// Matched by substring, so class names containing the letter are rejected too.
	NonEntityMarker = "П"
	// ListMarker marks collection types, e.g. "Список Item".
	ListMarker = "Список"
)

// Convertible type labels.
const (
	LabelString   = "Строка"
	LabelNumber   = "Число"
	LabelDateTime = "Дата/время"
)

// Fragments matched by the conversion rules.
const (
	fragmentString = "Строка"
	fragmentDate   = "Дата"
	fragmentNumber = "Число"
)

// DefaultLabels returns the convertible labels of the corpus.
func DefaultLabels() []string {
	return []string{LabelString, LabelNumber, LabelDateTime}
}

// DefaultRules returns the conversion rules of the corpus in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Contains: fragmentString, JDL: String},
		{Contains: fragmentDate, JDL: Instant},
		{Contains: fragmentNumber, JDL: Long},
	}
}

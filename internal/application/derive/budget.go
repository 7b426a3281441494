package derive

import "strings"

// Size is the declared display-size category of an adaptive widget.
type Size int

const (
	Medium Size = iota
	Small
	Large
)

// String implements fmt.Stringer.
func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Large:
		return "large"
	default:
		return "medium"
	}
}

// ParseSize maps a category name to a Size. Unknown or empty names are Medium.
func ParseSize(name string) Size {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small":
		return Small
	case "large":
		return Large
	default:
		return Medium
	}
}

// Budget bounds how much of a record a surface displays.
type Budget struct {
	TitleMax int
	TextMax  int
	Lines    int
}

// CompactBudget applies to the compact widget.
var CompactBudget = Budget{TitleMax: 28, TextMax: 140, Lines: 5}

// DialogMessageMax bounds the highlight echoed in the copy confirmation.
const DialogMessageMax = 100

// BudgetFor returns the adaptive widget budget for a size category.
func BudgetFor(size Size) Budget {
	switch size {
	case Small:
		return Budget{TitleMax: 30, TextMax: 80, Lines: 4}
	case Large:
		return Budget{TitleMax: 30, TextMax: 300, Lines: 6}
	default:
		return Budget{TitleMax: 30, TextMax: 150, Lines: 6}
	}
}

package enums

// Importance is the tier assigned to a golden rule by the analyst who curated it.
type Importance string

const (
	ImportanceNormal        Importance = "normal"
	ImportanceSpecial       Importance = "special"
	ImportanceImportant     Importance = "important"
	ImportanceVeryImportant Importance = "very_important"
)

// ConfidenceBonus returns the confidence points added for this tier.
func (i Importance) ConfidenceBonus() int {
	switch i {
	case ImportanceVeryImportant:
		return 3
	case ImportanceImportant:
		return 2
	case ImportanceSpecial:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the value is one of the closed set.
func (i Importance) Valid() bool {
	switch i {
	case ImportanceNormal, ImportanceSpecial, ImportanceImportant, ImportanceVeryImportant:
		return true
	}
	return false
}

// String returns string representation
func (i Importance) String() string {
	return string(i)
}

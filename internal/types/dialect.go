package types

import "fmt"

// Dialect is the English variant the grammar service checks against.
type Dialect int

const (
	DialectAmerican Dialect = iota // default
	DialectBritish
	DialectCanadian
	DialectAustralian
)

func (d Dialect) String() string {
	switch d {
	case DialectAmerican:
		return "american"
	case DialectBritish:
		return "british"
	case DialectCanadian:
		return "canadian"
	case DialectAustralian:
		return "australian"
	}

	return "unknown"
}

// ParseDialect converts a string to a Dialect value.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "american", "":
		return DialectAmerican, nil
	case "british":
		return DialectBritish, nil
	case "canadian":
		return DialectCanadian, nil
	case "australian":
		return DialectAustralian, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (valid: american, british, canadian, australian)", s)
	}
}

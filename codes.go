package countries

import "unicode/utf8"

// CodeKind identifies one of the country code systems carried by a record.
type CodeKind int

const (
	CodeAlpha2  CodeKind = iota + 1 // ISO 3166-1 alpha-2 (cca2)
	CodeAlpha3                      // ISO 3166-1 alpha-3 (cca3)
	CodeNumeric                     // ISO 3166-1 numeric (ccn3)
	CodeIOC                         // International Olympic Committee (cioc)
)

func (k CodeKind) String() string {
	switch k {
	case CodeAlpha2:
		return "cca2"
	case CodeAlpha3:
		return "cca3"
	case CodeNumeric:
		return "ccn3"
	case CodeIOC:
		return "cioc"
	}
	return "unknown"
}

// DetectCodeKind guesses the code system of code from its shape: all digits
// is numeric, two characters alpha-2, three characters alpha-3. IOC codes
// share the alpha-3 shape and are never reported here.
func DetectCodeKind(code string) (CodeKind, bool) {
	if isNumeric(code) {
		return CodeNumeric, true
	}
	switch utf8.RuneCountInString(code) {
	case 2:
		return CodeAlpha2, true
	case 3:
		return CodeAlpha3, true
	}
	return 0, false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

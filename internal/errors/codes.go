package errors

// Error codes for the fivecycle compiler
// These codes are used in error messages and let callers tell
// malformed input apart from a broken compiler invariant.
//
// Error code ranges:
// E0001-E0099: Permutation algebra errors
// E0100-E0199: Expression errors
// E0200-E0299: Normalization errors
// E0900-E0999: Reserved for tooling errors

const (
	// Permutation algebra errors (E0001-E0099)

	// E0001: Mapping is not a bijection on {0,1,2,3,4}
	ErrorInvalidPermutation = "E0001"

	// E0002: Element outside {0,1,2,3,4} applied to a permutation
	ErrorOutOfRange = "E0002"

	// E0003: Commutator synthesis on something other than one 5-cycle
	ErrorNotASingleFiveCycle = "E0003"

	// Expression errors (E0100-E0199)

	// E0100: Variable index is negative
	ErrorInvalidVariable = "E0100"

	// E0101: Expression node is nil or of an unknown kind
	ErrorInvalidExpression = "E0101"

	// Normalization errors (E0200-E0299)

	// E0200: Fixpoint iteration hit its guard
	ErrorNotConverged = "E0200"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorInvalidPermutation:
		return "Mapping is not a bijection on the five-element universe"
	case ErrorOutOfRange:
		return "Element is outside the five-element universe"
	case ErrorNotASingleFiveCycle:
		return "Permutation does not decompose into exactly one 5-cycle"
	case ErrorInvalidVariable:
		return "Variable index must be non-negative"
	case ErrorInvalidExpression:
		return "Expression tree contains a nil or unknown node"
	case ErrorNotConverged:
		return "Normalization did not reach a fixpoint within the iteration limit"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Permutation"
	case code >= "E0100" && code < "E0200":
		return "Expression"
	case code >= "E0200" && code < "E0300":
		return "Normalization"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}

// IsContractViolation reports whether the code signals a broken compiler
// invariant rather than bad caller input.
func IsContractViolation(code string) bool {
	return code == ErrorNotASingleFiveCycle
}

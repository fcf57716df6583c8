package tree

import "fmt"

// NotFiniteError is returned when constructing a Number from a non-finite
// floating point value.
type NotFiniteError struct {
	Value float64
}

func (e *NotFiniteError) Error() string {
	return fmt.Sprintf("non-finite number encountered: %v", e.Value)
}

// NumberOutOfRangeError is returned when a parsed numeric literal cannot be
// represented as a float64.
type NumberOutOfRangeError struct {
	Value string
}

func (e *NumberOutOfRangeError) Error() string {
	return fmt.Sprintf("number %s cannot be represented as f64", e.Value)
}

// NonStringYamlKeyError is returned when a YAML mapping uses a non-string
// key, which the canonical data model cannot represent.
type NonStringYamlKeyError struct {
	Found string
}

func (e *NonStringYamlKeyError) Error() string {
	return fmt.Sprintf("unsupported YAML key type: %s", e.Found)
}

// UnsupportedYamlTagError is returned when a YAML document uses a custom
// tag, which has no canonical representation.
type UnsupportedYamlTagError struct {
	Tag string
}

func (e *UnsupportedYamlTagError) Error() string {
	return fmt.Sprintf("unsupported YAML tag: %s", e.Tag)
}

// OptionsError reports an invalid combination of Options fields.
type OptionsError struct {
	msg string
}

func (e *OptionsError) Error() string { return e.msg }

var (
	// ErrPrecisionIncompatible is returned when a non-zero precision is
	// combined with Set or MultiSet array mode.
	ErrPrecisionIncompatible = &OptionsError{msg: "precision tolerance cannot be combined with set or multiset array modes"}
	// ErrSetKeysRequireSetMode is returned when set keys are configured
	// without Set array mode.
	ErrSetKeysRequireSetMode = &OptionsError{msg: "set keys require array mode to be set"}
	// ErrEmptySetKey is returned when a set key is empty or all whitespace.
	ErrEmptySetKey = &OptionsError{msg: "set keys must be non-empty strings"}
)

// Package demo holds the greeting and arithmetic operations exercised by the
// cidemo binary. Every function is pure and safe for concurrent use.
package demo

// Greet returns a greeting message for name.
// The name is used verbatim; only the empty string is rejected.
func Greet(name string) (string, error) {
	if name == "" {
		return "", &ArgumentError{Arg: "name", Message: "Name cannot be empty"}
	}
	return "Hello, " + name + "!", nil
}

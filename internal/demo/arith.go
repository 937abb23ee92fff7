package demo

// Number is the set of types Multiply accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Addable is the set of types Add accepts: numbers plus strings, which
// concatenate.
type Addable interface {
	Number | ~string
}

// Add returns a + b.
func Add[T Addable](a, b T) T {
	return a + b
}

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	return a * b
}

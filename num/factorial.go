package num

// MaxFactorial is the largest n whose factorial fits in a uint64.
const MaxFactorial = 20

// Factorial returns n!. 0! and 1! are 1.
// Returns [ErrNegative] for n < 0 and [ErrOverflow] for n > [MaxFactorial].
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxFactorial {
		return 0, ErrOverflow
	}
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result, nil
}

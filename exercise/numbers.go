package exercise

import (
	"fmt"
	"math/big"
)

// Factorial returns n!. It overflows silently for n > 20.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrInvalidArgument)
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// BigFactorial returns n! with arbitrary precision.
func BigFactorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("factorial of %d: %w", n, ErrInvalidArgument)
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}

// Fibonacci returns the first n Fibonacci numbers, starting 0, 1.
// Terms from index 93 on overflow int.
func Fibonacci(n int) []int {
	if n <= 0 {
		return []int{}
	}
	seq := make([]int, n)
	for i := 1; i < n; i++ {
		if i == 1 {
			seq[i] = 1
			continue
		}
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq
}

// BigFibonacci is like Fibonacci but exact for any n.
func BigFibonacci(n int) []*big.Int {
	if n <= 0 {
		return []*big.Int{}
	}
	seq := make([]*big.Int, n)
	seq[0] = big.NewInt(0)
	for i := 1; i < n; i++ {
		if i == 1 {
			seq[i] = big.NewInt(1)
			continue
		}
		seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
	}
	return seq
}

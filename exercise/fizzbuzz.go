package exercise

import (
	"bufio"
	"io"
	"os"
	"strconv"
)

// FizzBuzzLimit is the last number printed by FizzBuzz.
const FizzBuzzLimit = 100

// FizzBuzzWord returns the FizzBuzz word for i.
func FizzBuzzWord(i int) string {
	switch {
	case i%15 == 0:
		return "FizzBuzz"
	case i%3 == 0:
		return "Fizz"
	case i%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(i)
	}
}

// FizzBuzzLines returns the words for 1..n.
func FizzBuzzLines(n int) []string {
	lines := make([]string, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		lines = append(lines, FizzBuzzWord(i))
	}
	return lines
}

// WriteFizzBuzz writes one line per number from 1 to FizzBuzzLimit.
func WriteFizzBuzz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 1; i <= FizzBuzzLimit; i++ {
		if _, err := bw.WriteString(FizzBuzzWord(i) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FizzBuzz prints the FizzBuzz sequence to standard output.
func FizzBuzz() {
	_ = WriteFizzBuzz(os.Stdout)
}

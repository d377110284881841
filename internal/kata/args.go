package kata

import (
	"fmt"
	"strconv"
	"strings"
)

// parseInts accepts integers as separate arguments, comma-separated, or both.
func parseInts(exercise string, args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ArgError{
					Exercise: exercise,
					Message:  "not an integer",
					Details:  strconv.Quote(field),
				}
			}
			values = append(values, n)
		}
	}
	return values, nil
}

func parseExactInts(exercise string, args []string, count int) ([]int, error) {
	values, err := parseInts(exercise, args)
	if err != nil {
		return nil, err
	}
	if len(values) != count {
		return nil, countError(exercise, count, len(values), "integer")
	}
	return values, nil
}

// MaxCount bounds sizes taken from arguments, such as the number of
// Fibonacci terms or the factorial operand.
const MaxCount = 10000

// parseCount reads a single integer in [0, MaxCount]. Negative counts are
// left to the exercise, which treats them as zero.
func parseCount(exercise string, args []string) (int, error) {
	n, err := parseExactInts(exercise, args, 1)
	if err != nil {
		return 0, err
	}
	if n[0] > MaxCount {
		return 0, tooLargeError(exercise, n[0])
	}
	return n[0], nil
}

func tooLargeError(exercise string, n int) *ArgError {
	return &ArgError{
		Exercise: exercise,
		Message:  fmt.Sprintf("must be at most %d", MaxCount),
		Details:  fmt.Sprintf("got %d", n),
	}
}

func exactStrings(exercise string, args []string, count int) ([]string, error) {
	if len(args) != count {
		return nil, countError(exercise, count, len(args), "argument")
	}
	return args, nil
}

func countError(exercise string, want, got int, noun string) *ArgError {
	if want != 1 {
		noun += "s"
	}
	return &ArgError{
		Exercise: exercise,
		Message:  fmt.Sprintf("expected %d %s", want, noun),
		Details:  fmt.Sprintf("got %d", got),
	}
}

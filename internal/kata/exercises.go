package kata

import (
	"context"

	"github.com/rail44/kata/exercise"
)

// MaxMin is the result of the max_min exercise
type MaxMin struct {
	Max int `json:"max" yaml:"max"`
	Min int `json:"min" yaml:"min"`
}

// funcExercise adapts a plain function to the Exercise interface
type funcExercise struct {
	name        string
	description string
	usage       string
	run         func(args []string) (any, error)
}

func (e *funcExercise) Name() string        { return e.name }
func (e *funcExercise) Description() string { return e.description }
func (e *funcExercise) Usage() string       { return e.usage }

// Execute runs the exercise unless ctx is already done
func (e *funcExercise) Execute(ctx context.Context, args []string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.run(args)
}

func defaultExercises(opts Options) []Exercise {
	countVowels := exercise.CountVowels
	isAnagram := exercise.IsAnagram
	if opts.IgnoreCase {
		countVowels = exercise.CountVowelsFold
		isAnagram = exercise.IsAnagramFold
	}

	return []Exercise{
		&funcExercise{
			name:        "fizzbuzz",
			description: "FizzBuzz lines for 1 to 100",
			usage:       "fizzbuzz",
			run: func(args []string) (any, error) {
				if _, err := exactStrings("fizzbuzz", args, 0); err != nil {
					return nil, err
				}
				return exercise.FizzBuzzLines(exercise.FizzBuzzLimit), nil
			},
		},
		&funcExercise{
			name:        "sum",
			description: "Sum of a list of integers",
			usage:       "sum [n...]",
			run: func(args []string) (any, error) {
				xs, err := parseInts("sum", args)
				if err != nil {
					return nil, err
				}
				return exercise.Sum(xs), nil
			},
		},
		&funcExercise{
			name:        "dedupe",
			description: "Distinct integers in order of first occurrence",
			usage:       "dedupe [n...]",
			run: func(args []string) (any, error) {
				xs, err := parseInts("dedupe", args)
				if err != nil {
					return nil, err
				}
				return exercise.RemoveDuplicates(xs), nil
			},
		},
		&funcExercise{
			name:        "palindrome",
			description: "Whether a string reads the same backwards",
			usage:       "palindrome <text>",
			run: func(args []string) (any, error) {
				s, err := exactStrings("palindrome", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.IsPalindrome(s[0]), nil
			},
		},
		&funcExercise{
			name:        "vowels",
			description: "Number of vowels in a string",
			usage:       "vowels <text>",
			run: func(args []string) (any, error) {
				s, err := exactStrings("vowels", args, 1)
				if err != nil {
					return nil, err
				}
				return countVowels(s[0]), nil
			},
		},
		&funcExercise{
			name:        "anagram",
			description: "Whether two strings are anagrams",
			usage:       "anagram <a> <b>",
			run: func(args []string) (any, error) {
				s, err := exactStrings("anagram", args, 2)
				if err != nil {
					return nil, err
				}
				return isAnagram(s[0], s[1]), nil
			},
		},
		&funcExercise{
			name:        "maxmin",
			description: "Largest and smallest of a non-empty list of integers",
			usage:       "maxmin <n> [n...]",
			run: func(args []string) (any, error) {
				xs, err := parseInts("maxmin", args)
				if err != nil {
					return nil, err
				}
				hi, lo, err := exercise.FindMaxMin(xs)
				if err != nil {
					return nil, err
				}
				return MaxMin{Max: hi, Min: lo}, nil
			},
		},
		&funcExercise{
			name:        "factorial",
			description: "n! for a non-negative integer, arbitrary precision",
			usage:       "factorial <n>",
			run: func(args []string) (any, error) {
				n, err := parseExactInts("factorial", args, 1)
				if err != nil {
					return nil, err
				}
				if n[0] > MaxCount {
					return nil, tooLargeError("factorial", n[0])
				}
				f, err := exercise.BigFactorial(n[0])
				if err != nil {
					return nil, err
				}
				return f, nil
			},
		},
		&funcExercise{
			name:        "fibonacci",
			description: "First n Fibonacci numbers, arbitrary precision",
			usage:       "fibonacci <n>",
			run: func(args []string) (any, error) {
				n, err := parseCount("fibonacci", args)
				if err != nil {
					return nil, err
				}
				return exercise.BigFibonacci(n), nil
			},
		},
		&funcExercise{
			name:        "guess",
			description: "Check a guess against a secret number",
			usage:       "guess <secret> <guess>",
			run: func(args []string) (any, error) {
				n, err := parseExactInts("guess", args, 2)
				if err != nil {
					return nil, err
				}
				return exercise.NumberGuessingGame(n[0], n[1]), nil
			},
		},
	}
}

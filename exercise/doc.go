// Package exercise implements a small set of beginner programming exercises.
//
// Every function is stateless and safe for concurrent use. Inputs are never
// mutated and every returned slice is freshly allocated.
//
// Case policy: CountVowels and IsAnagram compare characters exactly.
// CountVowelsFold and IsAnagramFold ignore case.
package exercise

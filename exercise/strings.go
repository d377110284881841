package exercise

import "unicode"

// IsPalindrome reports whether s reads the same forwards and backwards.
// Characters are compared exactly, rune by rune.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// CountVowels counts the lowercase vowels a, e, i, o and u in s.
func CountVowels(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// CountVowelsFold is like CountVowels but also counts uppercase vowels.
func CountVowelsFold(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(unicode.ToLower(r)) {
			n++
		}
	}
	return n
}

// IsAnagram reports whether a and b hold the same characters with the same
// multiplicities. Case and whitespace are significant.
func IsAnagram(a, b string) bool {
	return sameRunes(a, b, func(r rune) rune { return r })
}

// IsAnagramFold is like IsAnagram but ignores case.
func IsAnagramFold(a, b string) bool {
	return sameRunes(a, b, unicode.ToLower)
}

func sameRunes(a, b string, norm func(rune) rune) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	counts := make(map[rune]int, len(ra))
	for _, r := range ra {
		counts[norm(r)]++
	}
	for _, r := range rb {
		r = norm(r)
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	assert.True(t, IsPalindrome("racecar"))
	assert.False(t, IsPalindrome("hello"))
	assert.True(t, IsPalindrome(""))
	assert.True(t, IsPalindrome("x"))
	assert.False(t, IsPalindrome("Racecar"))
	assert.True(t, IsPalindrome("réér"))
}

func TestCountVowels(t *testing.T) {
	assert.Equal(t, 2, CountVowels("hello"))
	assert.Equal(t, 0, CountVowels("sky"))
	assert.Equal(t, 0, CountVowels("HELLO"))
	assert.Equal(t, 2, CountVowelsFold("HELLO"))
	assert.Equal(t, 5, CountVowelsFold("AeIoU"))
}

func TestIsAnagram(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"listen", "silent", true},
		{"hello", "world", false},
		{"", "", true},
		{"ab", "abc", false},
		{"aab", "abb", false},
		{"Listen", "silent", false},
		{"a b", "ab ", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAnagram(tt.a, tt.b))
			assert.Equal(t, IsAnagram(tt.a, tt.b), IsAnagram(tt.b, tt.a), "must be symmetric")
		})
	}

	assert.True(t, IsAnagramFold("Listen", "Silent"))
	assert.False(t, IsAnagramFold("Listen", "Silence"))
}

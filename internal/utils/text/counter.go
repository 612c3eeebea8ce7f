// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for word and character counting
// that are shared between the input policy and the summarization providers.
package text

import "strings"

// CountWords counts the number of whitespace-separated words in the given text.
// The text is split on runs of Unicode whitespace and empty tokens are
// discarded, so leading, trailing, and repeated whitespace does not inflate
// the count.
//
// Examples:
//
//	CountWords("hello world")      // returns 2
//	CountWords("  hello   world ") // returns 2
//	CountWords("")                 // returns 0
//	CountWords("   \n\t  ")        // returns 0
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This function correctly handles multi-byte characters including accented
// letters, CJK text, and emoji by counting runes instead of bytes.
//
// This utility is shared by the summarization providers so that summary
// length reporting is consistent regardless of provider.
func CountRunes(text string) int {
	return len([]rune(text))
}

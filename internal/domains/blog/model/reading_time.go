package model

import "fmt"

// wordsPerMinute is the assumed reading speed.
const wordsPerMinute = 200

// EstimateReadingTime derives the reading-time label from the body. Words
// are whitespace-separated runs; the estimate rounds up, so any non-empty
// body is at least "1 min read". An empty body still counts as a single
// token, matching the naive-split behavior the label has always had.
func EstimateReadingTime(body string) string {
	wordCount := countWords(body)
	if wordCount == 0 {
		wordCount = 1
	}

	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

func countWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			inWord = false
		default:
			if !inWord {
				count++
			}
			inWord = true
		}
	}
	return count
}

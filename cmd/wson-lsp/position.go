package main

import (
	"strings"
	"unicode/utf16"
)

// Protocol positions count UTF-16 code units; token positions count
// characters.

func lineText(content string, line int) string {
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(content, '\n')
		if nl < 0 {
			return ""
		}
		content = content[nl+1:]
	}
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		content = content[:nl]
	}
	return strings.TrimSuffix(content, "\r")
}

// runeIndex converts a UTF-16 offset into line to a character index.
func runeIndex(line string, units int) int {
	n, u := 0, 0
	for _, r := range line {
		if u >= units {
			break
		}
		u += utf16.RuneLen(r)
		n++
	}
	if u < units {
		n += units - u
	}
	return n
}

// unitIndex converts a character index into line to a UTF-16 offset.
func unitIndex(line string, chars int) int {
	n, u := 0, 0
	for _, r := range line {
		if n >= chars {
			break
		}
		u += utf16.RuneLen(r)
		n++
	}
	if n < chars {
		u += chars - n
	}
	return u
}

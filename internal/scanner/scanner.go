// Package scanner detects in-progress #tag and @mention tokens around the
// caret of a draft being typed, and splices accepted suggestions back into
// the text.
package scanner

import (
	"strings"
	"unicode"

	"feedcompose/internal/common"
)

type Kind string

const (
	KindNone    Kind = "none"
	KindTag     Kind = "tag"
	KindMention Kind = "mention"
)

// Result is the live suggestion state at a caret position. Query is the
// partial token typed so far, possibly empty right after the trigger char.
type Result struct {
	Kind  Kind
	Query string
}

// Offsets are rune offsets, not byte offsets: the caret a text editor
// reports counts characters.

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Detect scans backward from the caret over a contiguous run of word
// characters. If the run is immediately preceded by '#' or '@', that prefix
// triggers tag or mention detection; a whitespace boundary or start-of-text
// without a trigger yields KindNone. Tag detection is checked first and wins
// on pathological overlap.
func Detect(text string, caret int) Result {
	runes := []rune(text)
	if caret < 0 || caret > len(runes) {
		return Result{Kind: KindNone}
	}

	i := caret
	for i > 0 && isWordRune(runes[i-1]) {
		i--
	}
	if i == 0 {
		return Result{Kind: KindNone}
	}

	query := string(runes[i:caret])
	switch runes[i-1] {
	case '#':
		return Result{Kind: KindTag, Query: query}
	case '@':
		return Result{Kind: KindMention, Query: query}
	}
	return Result{Kind: KindNone}
}

// Insert replaces the trailing prefix+query run ending at caret with
// prefix+value and a trailing space, and returns the new text plus the caret
// offset just past the inserted space so editing resumes after the token.
func Insert(text string, caret int, value, prefix string) (string, int) {
	runes := []rune(text)
	if caret < 0 || caret > len(runes) {
		return text, caret
	}

	i := caret
	for i > 0 && isWordRune(runes[i-1]) {
		i--
	}
	prefixRunes := []rune(prefix)
	start := i - len(prefixRunes)
	if start < 0 || string(runes[start:i]) != prefix {
		return text, caret
	}

	inserted := prefix + value + " "
	out := string(runes[:start]) + inserted + string(runes[caret:])
	return out, start + len([]rune(inserted))
}

// FilterUsers narrows an injected directory snapshot down to mention
// candidates. Matching is a case-insensitive substring test against handle
// and display name; an empty query keeps everyone.
func FilterUsers(users []common.User, query string) []common.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)

	var out []common.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Handle), q) ||
			strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out
}

// FilterTags narrows a known-tag list the same way.
func FilterTags(tags []string, query string) []string {
	if query == "" {
		return tags
	}
	q := strings.ToLower(query)

	var out []string
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			out = append(out, tag)
		}
	}
	return out
}

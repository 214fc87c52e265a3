// Package translation turns non-English compound queries into English ones on a best-effort basis.
//
// Only queries that contain CJK Unified Ideographs are sent to a backend. Every backend failure
// falls back to the original text, so translation never blocks a lookup.
package translation

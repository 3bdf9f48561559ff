// Package httpapi serves RNA family alignments over HTTP.
//
// Every response uses the same JSON envelope:
//
//	{"status": "success" | "error", "message": "...", "data": ...}
//
// except /family/{identifier}/raw, which returns the Stockholm text as fetched.
package httpapi

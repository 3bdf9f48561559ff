// Package stockholm interprets Stockholm multiple-sequence-alignment text.
//
// Parsing is a single pass over the lines of an in-memory document:
//
//   - Each line is classified as a sequence row, a "#=GC RF" reference row,
//     a "#=GC SS_cons" structure row, or ignorable (blank, header, comment,
//     other markup, or a row with an unexpected token count).
//   - Rows are folded into per-name fragments so that alignments wrapped over
//     several blocks come back as one contiguous string per sequence, in the
//     order names first appear.
//   - A non-empty structure row is decoded into base pairs by matching each
//     closing bracket against the nearest open bracket of the same family.
//     Supported families are <>, (), [] and {}. Every other character is inert.
//
// Parse is pure: it performs no I/O, keeps no state between calls and may run
// concurrently on separate inputs. Malformed rows are skipped rather than
// reported. WithStrict adds a column-count check on top of the default
// behaviour.
package stockholm

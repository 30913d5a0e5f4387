// Package inline is a minimal implementation of the flow package's
// InlineLayouter collaborator: it turns a paragraph's plain-text content
// into a sequence of line frames using greedy (not Knuth-Plass) line
// breaking. Line-break opportunity search is delegated to
// github.com/go-text/typesetting/segmenter (UAX #14); paragraph base
// direction uses golang.org/x/text/unicode/bidi. Real glyph shaping and
// justification are out of scope; lines are measured with a fixed
// per-rune advance and rendered as placeholder TextItems.
package inline

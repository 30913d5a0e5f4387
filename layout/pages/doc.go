// Package pages implements the page pipeline: laying out one page run's flow
// content into a sequence of page-sized frames, finalizing each with its
// margins/header/footer/background/foreground once its physical number is
// known, and driving the whole document by running independent page runs
// concurrently while finalizing them in source order.
//
// Splitting a realized content tree into page runs (grouping by page-style
// boundaries) is the realization layer's job; this package consumes an
// already-split []PageRun.
package pages

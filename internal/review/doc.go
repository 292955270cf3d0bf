// Package review assembles the reviewer prompt and orchestrates the
// walk -> diff -> prompt -> inference pipeline.
//
// The pipeline is a single logical thread of control: each stage fully
// completes before the next begins, and every value it produces is
// consumed exactly once within the run. Stages are injected behind
// small interfaces so tests can fake any of them.
package review

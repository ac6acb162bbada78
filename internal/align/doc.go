// Package align is the line formatting core. It splits paragraphs into words,
// greedily packs the words into lines of a maximum width and renders each
// line under an alignment mode. Nothing here performs I/O or keeps state
// between calls.
package align

// Package source reads input text from the file system and splits it into
// the paragraphs handed to the formatter.
package source

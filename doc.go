// Package epub manages the zip container layer of EPUB documents.
//
// An Archive resolves logical entry names to their stored bytes, accepting
// both literal Unicode paths and percent-escaped forms, and can rewrite the
// container so that exactly one entry's content changes while every other
// entry's compressed bytes, ordering, and metadata are preserved bit for bit.
//
// The package implements fs.FS for stdlib compatibility.
package epub

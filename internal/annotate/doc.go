// Package annotate stores highlights and hyperlinks on chart documents.
//
// Both services resolve a rendered column to its field, classify where the
// annotation belongs and write it while holding the document's write lock,
// so a concurrent binding change cannot interleave between resolution and
// write. Field-level writes invalidate the document's runtime aesthetic
// cache.
package annotate

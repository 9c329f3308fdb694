// Package scan prevents the same physical scan input from being
// processed more than once across interface re-renders, without
// external request ids.
package scan

import (
	"crypto/sha256"
	"encoding/hex"
)

// SourceKind identifies where a scan input came from.
type SourceKind string

const (
	// SourceUpload is a file selected by the operator. Identity is a
	// stable opaque id assigned by the input surface, changing only
	// when a different file is selected.
	SourceUpload SourceKind = "upload"
	// SourceCapture is a live camera frame. Identity is a content hash;
	// re-capturing byte-identical frames counts as the same capture,
	// which is an accepted limitation.
	SourceCapture SourceKind = "capture"
)

// Fingerprint remembers the last accepted identity per source kind.
// MarkProcessed must run before classification starts: a re-render
// that fires mid-classification then recognizes the input as already
// consumed instead of re-triggering it.
type Fingerprint struct {
	lastUploadID    string
	lastCaptureHash string
}

// ShouldProcess reports whether the identity is new for its kind.
func (f *Fingerprint) ShouldProcess(kind SourceKind, identity string) bool {
	if identity == "" {
		return false
	}
	switch kind {
	case SourceUpload:
		return identity != f.lastUploadID
	case SourceCapture:
		return identity != f.lastCaptureHash
	}
	return false
}

// MarkProcessed records the identity as consumed for its kind.
func (f *Fingerprint) MarkProcessed(kind SourceKind, identity string) {
	switch kind {
	case SourceUpload:
		f.lastUploadID = identity
	case SourceCapture:
		f.lastCaptureHash = identity
	}
}

// Reset forgets both identities so a new order accepts a previously
// seen file or capture again.
func (f *Fingerprint) Reset() {
	f.lastUploadID = ""
	f.lastCaptureHash = ""
}

// HashBytes derives a capture identity from raw image bytes.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

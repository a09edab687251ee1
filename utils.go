package workmesh

import (
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// DeriveDocumentID derives a stable content-addressed id for a document whose
// submitter did not supply one. Documents are immutable blobs, so the hash of
// the raw bytes is a valid identity.
func DeriveDocumentID(content []byte) string {
	sum := xxh3.Hash128(content).Bytes()
	return "doc-" + hex.EncodeToString(sum[:])
}

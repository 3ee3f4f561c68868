package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const (
	rowNamespace  = "homepage:row:"
	etagNamespace = "homepage:document:"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-source collisions (prefix by source kind).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// RowUUID identifies a row produced by a source that has no native ids,
// such as a Markdown file keyed by its path.
func RowUUID(source, key string) uuid.UUID {
	key = strings.TrimSpace(key)
	if key == "" {
		return uuid.Nil
	}
	return UUID(rowNamespace + strings.ToLower(strings.TrimSpace(source)) + ":" + key)
}

// ETag returns a strong entity tag for an encoded document. The payload is
// hashed verbatim so that any byte change yields a new tag.
func ETag(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	key := etagNamespace + string(payload)
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(false))
	if err != nil || uid == uuid.Nil {
		uid = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return `"` + uid.String() + `"`
}

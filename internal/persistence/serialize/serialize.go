// Package serialize converts stored documents into their transport shape:
// the store-assigned identifier is remapped to a public "id" string and every
// timestamp becomes an ISO-8601 UTC string. The store identifier never leaks
// under its native name.
package serialize

import (
	"fmt"
	"time"

	"github.com/hilthontt/companion/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const idField = "_id"

// Document maps a stored document to its transport record. It is total over
// any document shape this system produces: nil maps to nil, unknown value
// types pass through unchanged.
func Document(doc domain.Document) map[string]any {
	if doc == nil {
		return nil
	}

	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if key == idField {
			out["id"] = idString(value)
			continue
		}
		out[key] = normalize(value)
	}

	return out
}

// Documents maps a slice of stored documents, always returning a non-nil
// slice so empty lists encode as [] rather than null.
func Documents(docs []domain.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Document(doc))
	}

	return out
}

func idString(value any) string {
	if oid, ok := value.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(value)
}

func normalize(value any) any {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case primitive.A:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}

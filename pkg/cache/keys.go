package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ModelKey derives a cache key for a generated model from the generation
// inputs. The inputs are JSON-marshaled and hashed, so any change to bay
// counts, widths, story heights, cantilevers, or column grouping produces
// a different key.
func ModelKey(inputs interface{}) string {
	return hashKey("model", inputs)
}

// ArtifactKey derives a cache key for a rendered artifact (dot, svg, csv)
// produced from the model identified by modelHash.
func ArtifactKey(modelHash, format string) string {
	return hashKey("artifact", modelHash, format)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

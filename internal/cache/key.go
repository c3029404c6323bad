package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// DeriveKey builds "operation:tenant[:paramHash]".
//
// Segments are query-escaped, so neither segment can contain the separator or a
// glob metacharacter. json.Marshal writes map keys in sorted order, which makes
// the hash independent of insertion order.
func DeriveKey(operation, tenant string, params map[string]any) string {
	parts := []string{escapeSegment(operation), escapeSegment(tenant)}
	if len(params) > 0 {
		parts = append(parts, hashParams(params))
	}
	return strings.Join(parts, KeySeparator)
}

// tenantPatterns returns the scan patterns that cover every key of tenant.
func tenantPatterns(tenant string) []string {
	seg := escapeSegment(tenant)
	return []string{
		"*" + KeySeparator + seg,
		"*" + KeySeparator + seg + KeySeparator + "*",
	}
}

// ownedBy reports whether key's tenant segment is exactly tenant.
func ownedBy(key, tenant string) bool {
	parts := strings.Split(key, KeySeparator)
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	return parts[1] == escapeSegment(tenant)
}

func escapeSegment(s string) string {
	return url.QueryEscape(s)
}

func hashParams(params map[string]any) string {
	raw, err := json.Marshal(params)
	if err != nil {
		// fmt also prints map keys in sorted order.
		raw = []byte(fmt.Sprintf("%v", params))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:16])
}

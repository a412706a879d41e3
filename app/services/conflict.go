package services

import (
	"fmt"
	"regexp"
	"strings"
)

// MySQL reports unique violations as:
//
//	Error 1062 (23000): Duplicate entry 'VALUE' for key 'table.index_name'
//
// For the composite variant index the entry is the indexed values joined
// with '-', e.g. '7-NAVY01'.
var duplicateEntryRe = regexp.MustCompile(`Duplicate entry '(.*)' for key '([^']+)'`)

// translateDuplicate converts a persistence error into a message naming
// the violated constraint. The second return is false when the error is
// not a uniqueness conflict at all.
func translateDuplicate(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	text := err.Error()
	if !strings.Contains(text, "Duplicate entry") {
		return "", false
	}

	match := duplicateEntryRe.FindStringSubmatch(text)
	if match == nil {
		return "A record with the same unique value already exists.", true
	}
	entry, key := match[1], match[2]

	switch {
	case strings.Contains(key, "uniq_fabrics_external_id"):
		return fmt.Sprintf("A fabric with external id %q already exists.", entry), true
	case strings.Contains(key, "uniq_fabrics_name"):
		return fmt.Sprintf("A fabric named %q already exists.", entry), true
	case strings.Contains(key, "uniq_variant_code_per_fabric"):
		if parts := strings.SplitN(entry, "-", 2); len(parts) == 2 {
			return fmt.Sprintf("Variant code %q is already used by this fabric.", parts[1]), true
		}
		return "Two variants of this fabric share the same code.", true
	}
	return "A record with the same unique value already exists.", true
}

package dng

import (
	"github.com/spf13/cast"
)

// recordsAt returns the first list of records found under any of the given
// envelope keys, in priority order. Entries that are not objects are
// skipped rather than failing the whole listing: one malformed upstream
// record must never break the call.
func recordsAt(envelope map[string]any, keys []string) []map[string]any {
	for _, key := range keys {
		raw, ok := envelope[key].([]any)
		if !ok {
			continue
		}
		records := make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
		return records
	}
	return nil
}

// stringField returns the value of the first candidate field present in the
// record, rendered as a string. Scalar values (numbers, booleans) are
// stringified because upstream identifiers are not consistently typed;
// nested objects and lists do not qualify. Missing everywhere → "".
func stringField(record map[string]any, candidates ...string) string {
	for _, key := range candidates {
		value, ok := record[key]
		if !ok || value == nil {
			continue
		}
		switch value.(type) {
		case map[string]any, []any:
			continue
		}
		if s := cast.ToString(value); s != "" {
			return s
		}
	}
	return ""
}

package cache

import "encoding/json"

// PruneNulls recursively strips null values from a decoded JSON tree.
// Arrays are recursed element-wise (elements are pruned, not removed),
// objects key-wise (keys holding null are dropped). Scalars pass through.
//
// Document stores without an absent-value marker cannot represent null
// fields, so values are pruned before writing. Backends that support
// nulls natively can skip this step entirely.
func PruneNulls(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			if child == nil {
				continue
			}
			out[k] = PruneNulls(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = PruneNulls(child)
		}
		return out
	default:
		return v
	}
}

// PruneJSON round-trips raw JSON through PruneNulls.
// Returns the input unchanged if it does not parse.
func PruneJSON(data []byte) []byte {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return data
	}
	pruned, err := json.Marshal(PruneNulls(tree))
	if err != nil {
		return data
	}
	return pruned
}

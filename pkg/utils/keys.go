package utils

// GetKeyList extracts key from every item, preserving order.
func GetKeyList[T any, K any](items []T, key func(T) K) []K {
	keys := make([]K, 0, len(items))
	for _, item := range items {
		keys = append(keys, key(item))
	}
	return keys
}

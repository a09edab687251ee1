package usecase

// Typed accessors over a decoded JSON object. Documents come from an
// uncontrolled external source, so absence and kind mismatch are normal
// outcomes, never errors. Every entity field assignment routes through these.

func getString(obj map[string]any, key string) *string {
	value, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &value
}

// getInt returns the integer part of a JSON number. Strings that look like
// numbers do not count.
func getInt(obj map[string]any, key string) *int64 {
	number, ok := obj[key].(float64)
	if !ok {
		return nil
	}
	value := int64(number)
	return &value
}

func getBool(obj map[string]any, key string, defaultValue bool) bool {
	value, ok := obj[key].(bool)
	if !ok {
		return defaultValue
	}
	return value
}

func getObject(obj map[string]any, key string) map[string]any {
	value, ok := obj[key].(map[string]any)
	if !ok {
		return nil
	}
	return value
}

func getArray(obj map[string]any, key string) []any {
	value, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	return value
}

package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		if transform != nil {
			result = transform(result)
		}
	}

	return result
}

// Compose creates a reusable pipeline from transforms.
// With no transforms it returns the identity function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Identity returns value unchanged. It is the normalizer for fields that
// must be validated exactly as typed.
func Identity[T any](value T) T {
	return value
}

package observe

// Value is an observable container for a single comparable value.
// Set notifies only when the stored value actually changes.
type Value[T comparable] struct {
	changes Source
	value   T
}

// NewValue creates a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Subscribe registers fn to run after every change.
func (v *Value[T]) Subscribe(fn Callback) Revoke {
	return v.changes.Subscribe(fn)
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set stores value and notifies subscribers if it differs from the current one.
func (v *Value[T]) Set(value T) {
	if v.value == value {
		return
	}
	v.value = value
	v.changes.Notify()
}

// SetSilent stores value without notifying.
func (v *Value[T]) SetSilent(value T) {
	v.value = value
}

// Update replaces the value with fn(current).
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.value))
}

// Copy sets this value from other.
func (v *Value[T]) Copy(other *Value[T]) {
	v.Set(other.value)
}

// Clone returns an independent Value with no subscribers.
func (v *Value[T]) Clone() *Value[T] {
	return NewValue(v.value)
}

// Equals reports whether both hold the same value.
func (v *Value[T]) Equals(other *Value[T]) bool {
	return other != nil && v.value == other.value
}

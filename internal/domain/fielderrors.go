package domain

// FieldErrors maps a form field path to a human-readable message.
// Nested fields use dotted paths ("pricing.adult.price",
// "location.country"); absence of a key means the field has no error.
// Errors are data, not exceptions — the UI renders them next to the
// offending field.
type FieldErrors map[string]string

// Add records a message for the given field path.
func (e FieldErrors) Add(field, message string) {
	e[field] = message
}

// Has reports whether the field currently has an error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear removes the error for a single field. Called whenever the user
// edits that field, so stale messages disappear as soon as typing resumes.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

// Empty reports whether the set contains no errors at all.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

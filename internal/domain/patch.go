package domain

// PatchField describes one column of a partial update. The zero value
// leaves the column untouched; a Set field with a nil Value clears the
// column; a Set field with a non-nil Value overwrites it. Callers never
// need to resupply unchanged fields.
type PatchField struct {
	Set   bool
	Value *int64
}

// SetField returns a PatchField that overwrites the column with v.
func SetField(v int64) PatchField {
	return PatchField{Set: true, Value: &v}
}

// ClearField returns a PatchField that sets the column to NULL.
func ClearField() PatchField {
	return PatchField{Set: true}
}

// TimeEntryPatch is a partial update of a time entry's interval.
type TimeEntryPatch struct {
	StartTime PatchField
	EndTime   PatchField
}

// Empty reports whether the patch would change nothing.
func (p TimeEntryPatch) Empty() bool {
	return !p.StartTime.Set && !p.EndTime.Set
}

package flow

import "github.com/chauffeurkit/bookform/pkg/schema"

// FieldVisible evaluates a field's conditional logic against the current
// session values. Fields without conditional logic are always visible.
func (s *Session) FieldVisible(section schema.BookingType, field schema.FormField) bool {
	cond := field.Conditional
	if cond == nil {
		return true
	}
	return s.sectionValue(section, cond.FieldKey) == cond.Value
}

// VisibleFields returns the section's fields with conditional logic applied,
// in declaration order.
func (s *Session) VisibleFields(section schema.BookingType) []schema.FormField {
	fields := s.def.Fields.Section(section)
	out := make([]schema.FormField, 0, len(fields))
	for _, field := range fields {
		if s.FieldVisible(section, field) {
			out = append(out, field)
		}
	}
	return out
}

// MissingRequired returns the submission keys of required fields that are
// currently visible and empty. Conditionally hidden required fields are not
// checked.
func (s *Session) MissingRequired(section schema.BookingType) []string {
	var missing []string
	for _, field := range s.VisibleFields(section) {
		if !field.Required || field.Key == "" {
			continue
		}
		if s.sectionValue(section, field.Key) == "" {
			missing = append(missing, field.Key)
		}
	}
	return missing
}

func (s *Session) sectionValue(section schema.BookingType, key string) string {
	return s.values[section][key]
}

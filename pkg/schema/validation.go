package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// StructureError collects every violation found in a FormStructure so authors
// can fix a document in one pass.
type StructureError struct {
	Violations []string
}

func (e *StructureError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "schema: invalid form structure"
	}
	return "schema: invalid form structure: " + strings.Join(e.Violations, "; ")
}

// Validate checks the structural invariants of a FormStructure:
//
//   - submission keys are lowercase/underscore and unique within a section
//     (an empty key is allowed but excludes the field from conditional and
//     fare logic)
//   - option-backed kinds declare at least one option
//   - conditional logic references another field in the same section, never
//     the field itself, and the controller carries options or is a checkbox
func Validate(structure FormStructure) error {
	var violations []string

	for _, section := range sectionOrder(structure) {
		fields := structure[section]
		seen := make(map[string]struct{}, len(fields))

		for _, field := range fields {
			where := fmt.Sprintf("%s/%s", section, fieldRef(field))

			if field.Kind != "" && !field.Kind.Valid() {
				violations = append(violations, fmt.Sprintf("%s: unknown field type %q", where, field.Kind))
			}
			if field.Kind.WantsOptions() && len(field.Options) == 0 {
				violations = append(violations, fmt.Sprintf("%s: %s field needs options", where, field.Kind))
			}

			if field.Key != "" {
				if !keyPattern.MatchString(field.Key) {
					violations = append(violations, fmt.Sprintf("%s: key must be lowercase/underscore", where))
				}
				if _, dup := seen[field.Key]; dup {
					violations = append(violations, fmt.Sprintf("%s: duplicate key in section", where))
				}
				seen[field.Key] = struct{}{}
			}

			if cond := field.Conditional; cond != nil {
				violations = append(violations, validateCondition(structure, section, field)...)
			}
		}
	}

	if len(violations) > 0 {
		return &StructureError{Violations: violations}
	}
	return nil
}

func validateCondition(structure FormStructure, section BookingType, field FormField) []string {
	where := fmt.Sprintf("%s/%s", section, fieldRef(field))
	cond := field.Conditional

	if cond.FieldKey == "" {
		return []string{where + ": conditional logic needs a controlling field key"}
	}
	if field.Key != "" && cond.FieldKey == field.Key {
		return []string{where + ": conditional logic cannot reference the field itself"}
	}

	controller, ok := structure.Field(section, cond.FieldKey)
	if !ok {
		return []string{fmt.Sprintf("%s: conditional logic references unknown field %q", where, cond.FieldKey)}
	}
	if len(controller.Options) == 0 && controller.Kind != KindCheckbox {
		return []string{fmt.Sprintf("%s: controlling field %q has neither options nor boolean values", where, cond.FieldKey)}
	}
	return nil
}

func sectionOrder(structure FormStructure) []BookingType {
	order := make([]BookingType, 0, len(structure))
	if _, ok := structure[SectionCommon]; ok {
		order = append(order, SectionCommon)
	}
	for _, t := range BookingTypes() {
		if _, ok := structure[t]; ok {
			order = append(order, t)
		}
	}
	return order
}

func fieldRef(field FormField) string {
	if field.Key != "" {
		return field.Key
	}
	if field.ID != "" {
		return field.ID
	}
	return "(unnamed)"
}

package tracking

import (
	"sort"
	"strings"
)

// Errors maps a failing field to a human-readable message. An empty set means valid.
type Errors map[Field]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []Field {
	fields := make([]Field, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

	return fields
}

// ValidationError wraps a non-empty Errors set.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		names = append(names, string(f))
	}

	return "validation failed: " + strings.Join(names, ", ")
}

// Validation messages.
const (
	MsgURLRequired      = "URL is required"
	MsgURLInvalid       = "Please enter a valid URL (including http:// or https://)"
	MsgSourceRequired   = "Source is required"
	MsgMediumRequired   = "Medium is required"
	MsgCampaignRequired = "Campaign name is required"
)

// Validate checks the required fields and the URL. Values are not trimmed:
// only the empty string counts as missing. Term and content never fail.
func Validate(p Params) Errors {
	errs := Errors{}

	switch {
	case p.URL == "":
		errs[FieldURL] = MsgURLRequired
	case !IsAbsoluteURL(p.URL):
		errs[FieldURL] = MsgURLInvalid
	}

	if p.Source == "" {
		errs[FieldSource] = MsgSourceRequired
	}

	if p.Medium == "" {
		errs[FieldMedium] = MsgMediumRequired
	}

	if p.Campaign == "" {
		errs[FieldCampaign] = MsgCampaignRequired
	}

	return errs
}

package gst

import "strings"

// FilingVariant classifies a GST return filing status for display.
type FilingVariant string

const (
	FilingVariantFiled    FilingVariant = "filed"
	FilingVariantNotFiled FilingVariant = "notFiled"
	FilingVariantUnknown  FilingVariant = "unknown"
)

// FilingStatus is the normalized classification of a registry status
// string. For the unknown variant the label preserves the original text
// so no information is silently dropped.
type FilingStatus struct {
	Label   string        `json:"label"`
	Variant FilingVariant `json:"variant"`
}

// NormalizeFilingStatus maps free-text filing status strings from the
// external registry into a closed {filed, notFiled, unknown} set. The
// upstream vocabulary is not contractually fixed, so matching is
// best-effort, case-insensitive substring tests. The not-filed phrases are
// checked first: "not filed" contains "filed" as a substring and must
// short-circuit before the filed vocabulary runs.
func NormalizeFilingStatus(statusText string) FilingStatus {
	normalized := strings.ToLower(strings.TrimSpace(statusText))

	switch {
	case strings.Contains(normalized, "not filed"),
		strings.Contains(normalized, "pending"),
		strings.Contains(normalized, "due"),
		normalized == "no",
		normalized == "nil":
		return FilingStatus{Label: "Not filed", Variant: FilingVariantNotFiled}

	case strings.Contains(normalized, "filed"),
		strings.Contains(normalized, "completed"),
		strings.Contains(normalized, "submitted"),
		normalized == "yes":
		return FilingStatus{Label: "Filed", Variant: FilingVariantFiled}
	}

	return FilingStatus{Label: statusText, Variant: FilingVariantUnknown}
}

package models

// ReviewRow represents one data row of the review sheet.
type ReviewRow struct {
	// Skill is the token rendered in the first column.
	Skill string `json:"skill"`
	// Mark is "Yes" when the skill was found in the known column, else empty.
	Mark string `json:"mark,omitempty"`
}

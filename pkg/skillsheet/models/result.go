// Package models defines data structures for skill extraction results.
package models

// Result represents the outcome of processing one workbook.
type Result struct {
	// OutputFile is the path of the generated review workbook.
	OutputFile string `json:"output_file"`
	// SkillCount is the number of rows in the review sheet.
	SkillCount int `json:"skill_count"`
	// KnownCount is the number of distinct skills found in the known column.
	KnownCount int `json:"known_count"`
	// Message is the plain-text share message for the client.
	Message string `json:"message"`
	// MessageHTML is the HTML rendering of the share message.
	MessageHTML string `json:"message_html"`
}

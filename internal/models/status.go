package models

import "strings"

// ContentStatus is the moderation state shared by recipes and blogs.
type ContentStatus string

const (
	StatusPending   ContentStatus = "PENDING"
	StatusPublished ContentStatus = "PUBLISHED"
	StatusRejected  ContentStatus = "REJECTED"
)

// ParseContentStatus maps a request string onto a known status. Unknown or
// empty input falls back to PENDING so that unmoderated content never
// bypasses review.
func ParseContentStatus(value string) ContentStatus {
	switch ContentStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusPublished:
		return StatusPublished
	case StatusRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

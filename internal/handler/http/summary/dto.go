// Package summary provides HTTP handlers for generating, saving, and
// listing summaries. All endpoints here require an authenticated user.
package summary

import "time"

// DTO represents the JSON structure for a saved summary.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	InputText string    `json:"inputText" example:"The original document text..."`
	Summary   string    `json:"summary" example:"A condensed version."`
	CreatedAt time.Time `json:"createdAt" example:"2026-08-29T12:00:00Z"`
}

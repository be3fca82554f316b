package dtos

import "encoding/json"

type GenerationRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerationResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type BulkGenerationRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	Prompt      string `json:"prompt" binding:"required"`
	Count       int    `json:"count"`
	AutoSave    bool   `json:"auto_save"`
}

// BulkGenerationResult reports per-item outcomes; one failed upstream
// call never rolls back the items that succeeded.
type BulkGenerationResult struct {
	GeneratedCount int               `json:"generated_count"`
	FailedCount    int               `json:"failed_count"`
	SavedCount     int               `json:"saved_count"`
	Items          []json.RawMessage `json:"items"`
	Errors         []string          `json:"errors,omitempty"`
}

package store

import "time"

// ReportRun is the persisted metadata of one questionnaire generation.
type ReportRun struct {
	ID         string
	SourceFile string
	CreatedAt  time.Time
	TotalItems int
	AltaCount  int
	MediaCount int
	BajaCount  int
	// full report serialized as JSON for later retrieval
	ReportJSON string
}

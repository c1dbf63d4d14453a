package api

import (
	"time"

	"github.com/de-tools/fdd-atlas/pkg/models/store"
)

// ReportRun is the API shape of one questionnaire generation.
type ReportRun struct {
	Id         string    `json:"id"`
	SourceFile string    `json:"source_file"`
	CreatedAt  time.Time `json:"created_at"`
	TotalItems int       `json:"total_items"`
	AltaCount  int       `json:"alta_count"`
	MediaCount int       `json:"media_count"`
	BajaCount  int       `json:"baja_count"`
}

func ReportRunFromStore(run store.ReportRun) ReportRun {
	return ReportRun{
		Id:         run.ID,
		SourceFile: run.SourceFile,
		CreatedAt:  run.CreatedAt,
		TotalItems: run.TotalItems,
		AltaCount:  run.AltaCount,
		MediaCount: run.MediaCount,
		BajaCount:  run.BajaCount,
	}
}

type Error struct {
	Message string `json:"message"`
}

package surveyimport

import (
	"time"

	"github.com/lib/pq"
)

// ImportJob records one CSV import pass for operator visibility:
// counts, and the rows that were skipped as malformed. It is written
// after the pass and has no effect on pipeline semantics.
type ImportJob struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Filename  string         `json:"archivo"`
	Rows      int            `json:"filas"`
	Surveys   int            `json:"encuestas"`
	Answers   int            `json:"respuestas"`
	Questions int            `json:"preguntas"`
	RowErrors pq.StringArray `gorm:"type:text[]" json:"erroresFila"`
	CreatedAt time.Time      `json:"fechaCreacion"`
}

func (ImportJob) TableName() string { return "asis.import_jobs" }

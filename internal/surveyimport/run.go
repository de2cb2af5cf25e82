package surveyimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/vals999/asis-backend/internal/survey"
	"gorm.io/gorm"
)

// Report summarizes one import pass.
type Report struct {
	Rows      int      `json:"filas"`
	Surveys   int      `json:"encuestas"`
	Answers   int      `json:"respuestas"`
	Questions int      `json:"preguntas"`
	RowErrors []string `json:"erroresFila,omitempty"`
}

// Run streams one CSV file into the store: the header row is upserted
// into the question catalog, then every data row becomes one Survey
// plus one Answer per non-blank cell.
//
// Each write is an independent create. There is deliberately no
// transaction spanning the file: a failure partway through leaves a
// partially imported file behind, which is an observable, documented
// outcome. Questions deduplicate on re-import; answers do not.
func Run(gdb *gorm.DB, r io.Reader, filename string) (*Report, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = normalizeHeaderRow(header)

	// Column index -> question, for the remainder of this pass. Blank
	// header cells never produce a question.
	questionsByCol := make(map[int]*survey.Question)
	newQuestions := 0
	for i, cell := range header {
		if cell == "" {
			continue
		}
		meta := metaForHeader(cell)
		q, created, err := survey.UpsertQuestion(gdb, cell, meta.Text, meta.Category, meta.AnswerType)
		if err != nil {
			return nil, fmt.Errorf("upsert question column %d: %w", i, err)
		}
		if created {
			newQuestions++
		}
		questionsByCol[i] = q
	}

	report := &Report{Questions: newQuestions}
	rowNum := 1
	for {
		rowNum++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Malformed row: skip it, keep the file going.
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if err != nil {
			return report, fmt.Errorf("read row %d: %w", rowNum, err)
		}

		report.Rows++

		// One survey per data row; every answer of the row points at it.
		s := survey.Survey{ExternalID: fmt.Sprintf("%s#%d", filename, rowNum)}
		if err := gdb.Create(&s).Error; err != nil {
			return report, fmt.Errorf("create survey for row %d: %w", rowNum, err)
		}
		report.Surveys++

		for i := range header {
			q, ok := questionsByCol[i]
			if !ok {
				continue
			}
			value := cellValue(row, i)
			if value == "" {
				continue
			}

			a := survey.Answer{
				SurveyID:   s.ID,
				QuestionID: q.ID,
				Value:      value,
			}
			if err := gdb.Create(&a).Error; err != nil {
				return report, fmt.Errorf("create answer row %d column %d: %w", rowNum, i, err)
			}
			report.Answers++
		}
	}

	recordJob(gdb, filename, report)
	return report, nil
}

// recordJob persists the import summary. Best-effort: a failure here
// does not fail the import.
func recordJob(gdb *gorm.DB, filename string, report *Report) {
	job := ImportJob{
		ID:        uuid.NewString(),
		Filename:  filename,
		Rows:      report.Rows,
		Surveys:   report.Surveys,
		Answers:   report.Answers,
		Questions: report.Questions,
		RowErrors: report.RowErrors,
	}
	if err := gdb.Create(&job).Error; err != nil {
		log.Printf("[import] failed to record job for %s: %v", filename, err)
	}
}

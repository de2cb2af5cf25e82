package survey

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindQuestionByExternalKey looks a question up by its import key.
// Returns (nil, nil) when no active question carries that key.
func FindQuestionByExternalKey(gdb *gorm.DB, key string) (*Question, error) {
	return findQuestionByExternalKey(gdb, key)
}

// findQuestionByExternalKeyUnscoped includes tombstoned questions. The
// unique index on external_key covers them too, so the catalog must
// reuse a tombstoned question rather than collide with its key.
func findQuestionByExternalKeyUnscoped(gdb *gorm.DB, key string) (*Question, error) {
	return findQuestionByExternalKey(gdb.Unscoped(), key)
}

func findQuestionByExternalKey(gdb *gorm.DB, key string) (*Question, error) {
	var q Question
	err := gdb.First(&q, "external_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpsertQuestion finds the question with the given external key or
// creates it, reporting whether a new row was created. An existing
// question is returned unchanged, tombstoned or not; the curated
// metadata applies only at creation time. Creation uses ON CONFLICT
// DO NOTHING so losing a duplicate-key race against a concurrent
// import degrades to a lookup.
func UpsertQuestion(gdb *gorm.DB, key, text string, category QuestionCategory, answerType AnswerType) (*Question, bool, error) {
	existing, err := findQuestionByExternalKeyUnscoped(gdb, key)
	if err != nil {
		return nil, false, fmt.Errorf("find question %q: %w", key, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	q := Question{
		Text:        text,
		Category:    category,
		AnswerType:  answerType,
		ExternalKey: key,
	}
	res := gdb.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_key"}},
		DoNothing: true,
	}).Create(&q)
	if res.Error != nil {
		return nil, false, fmt.Errorf("create question %q: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		// Lost the race, or the key belongs to a tombstoned question;
		// either way the existing row is the question.
		winner, err := findQuestionByExternalKeyUnscoped(gdb, key)
		if err != nil {
			return nil, false, fmt.Errorf("refetch question %q: %w", key, err)
		}
		if winner == nil {
			return nil, false, fmt.Errorf("question %q vanished after conflict", key)
		}
		return winner, false, nil
	}
	return &q, true, nil
}

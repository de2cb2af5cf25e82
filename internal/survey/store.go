package survey

import (
	"gorm.io/gorm"
)

// Thin generic persistence layer shared by every entity: list, fetch,
// create, update, soft-delete, restore. GORM's DeletedAt keeps
// tombstoned rows out of the default scope; fetch-by-id is unscoped so
// deleted rows stay addressable.

func ListAll[T any](gdb *gorm.DB) ([]T, error) {
	var out []T
	err := gdb.Unscoped().Order("id").Find(&out).Error
	return out, err
}

func ListActive[T any](gdb *gorm.DB) ([]T, error) {
	var out []T
	err := gdb.Order("id").Find(&out).Error
	return out, err
}

func GetByID[T any](gdb *gorm.DB, id int64) (*T, error) {
	var e T
	err := gdb.Unscoped().First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func CreateEntity[T any](gdb *gorm.DB, e *T) error {
	return gdb.Create(e).Error
}

func UpdateEntity[T any](gdb *gorm.DB, e *T) error {
	return gdb.Save(e).Error
}

func SoftDelete[T any](gdb *gorm.DB, id int64) error {
	res := gdb.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func Restore[T any](gdb *gorm.DB, id int64) error {
	res := gdb.Unscoped().Model(new(T)).Where("id = ?", id).Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActiveAnswerRows loads every active answer joined with its question,
// flattened for the filter engine, in store (id) order.
func ActiveAnswerRows(gdb *gorm.DB) ([]AnswerRow, error) {
	var rows []AnswerRow
	err := gdb.Table("asis.answers AS a").
		Select("a.id AS answer_id, a.survey_id, a.question_id, q.text AS question_text, q.category, q.answer_type, a.value").
		Joins("JOIN asis.questions q ON q.id = a.question_id").
		Where("a.deleted_at IS NULL AND q.deleted_at IS NULL").
		Order("a.id").
		Scan(&rows).Error
	return rows, err
}

// AnswerRowsByQuestionKey loads the active answers of one question,
// addressed by its import key, in store order.
func AnswerRowsByQuestionKey(gdb *gorm.DB, key string) ([]AnswerRow, error) {
	var rows []AnswerRow
	err := gdb.Table("asis.answers AS a").
		Select("a.id AS answer_id, a.survey_id, a.question_id, q.text AS question_text, q.category, q.answer_type, a.value").
		Joins("JOIN asis.questions q ON q.id = a.question_id").
		Where("q.external_key = ? AND a.deleted_at IS NULL AND q.deleted_at IS NULL", key).
		Order("a.id").
		Scan(&rows).Error
	return rows, err
}

// AnswerRowsByQuestionKeyAndValue additionally restricts to one answer
// value, matched case-insensitively.
func AnswerRowsByQuestionKeyAndValue(gdb *gorm.DB, key, value string) ([]AnswerRow, error) {
	var rows []AnswerRow
	err := gdb.Table("asis.answers AS a").
		Select("a.id AS answer_id, a.survey_id, a.question_id, q.text AS question_text, q.category, q.answer_type, a.value").
		Joins("JOIN asis.questions q ON q.id = a.question_id").
		Where("q.external_key = ? AND LOWER(a.value) = LOWER(?) AND a.deleted_at IS NULL AND q.deleted_at IS NULL", key, value).
		Order("a.id").
		Scan(&rows).Error
	return rows, err
}

package survey

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vals999/asis-backend/internal/db"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeJSONStatus sets the content type before the status line goes
// out; headers set after WriteHeader are dropped.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// FilterHandler evaluates the compound filter request over the active
// answer collection.
func FilterHandler(w http.ResponseWriter, r *http.Request) {
	var filtros Filtros
	if err := json.NewDecoder(r.Body).Decode(&filtros); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rows, err := ActiveAnswerRows(db.DB)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, FilterAnswers(rows, filtros))
}

// AnswersByCategoryHandler is the no-filters primitive: all active
// (question, answer, category, survey) tuples, optionally restricted to
// one category.
func AnswersByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := ActiveAnswerRows(db.DB)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, ProjectByCategory(rows, r.URL.Query().Get("categoria")))
}

// QuestionsByCategoryHandler lists the distinct question texts present
// in the active answers of one category.
func QuestionsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := ActiveAnswerRows(db.DB)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, QuestionTextsByCategory(rows, r.URL.Query().Get("categoria")))
}

// MapCoordinatesHandler reconstructs coordinate pairs from the latitude
// and longitude answer columns.
func MapCoordinatesHandler(w http.ResponseWriter, r *http.Request) {
	lats, err := AnswerRowsByQuestionKey(db.DB, latQuestionKey)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	lons, err := AnswerRowsByQuestionKey(db.DB, lonQuestionKey)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, PairCoordinates(lats, lons))
}

// FilteredCoordinatesHandler reconstructs coordinates for the surveys
// whose answer to preguntaCodigo equals respuesta.
func FilteredCoordinatesHandler(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("preguntaCodigo")
	value := r.URL.Query().Get("respuesta")
	if code == "" || value == "" {
		http.Error(w, "preguntaCodigo and respuesta are required", http.StatusBadRequest)
		return
	}

	targets, err := AnswerRowsByQuestionKeyAndValue(db.DB, code, value)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	lats, err := AnswerRowsByQuestionKey(db.DB, latQuestionKey)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	lons, err := AnswerRowsByQuestionKey(db.DB, lonQuestionKey)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, PairFilteredCoordinates(targets, lats, lons))
}

// UniqueAnswersByQuestionKeyHandler lists the distinct non-blank values
// answered to one question, addressed by its import key.
func UniqueAnswersByQuestionKeyHandler(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("preguntaCodigo")
	if code == "" {
		http.Error(w, "preguntaCodigo is required", http.StatusBadRequest)
		return
	}

	var values []string
	err := db.DB.Table("asis.answers AS a").
		Distinct("a.value").
		Joins("JOIN asis.questions q ON q.id = a.question_id").
		Where("q.external_key = ? AND a.deleted_at IS NULL AND a.value <> ''", code).
		Order("a.value").
		Scan(&values).Error
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, values)
}

// Generic CRUD handlers shared by every entity.

func listAllHandler[T any](w http.ResponseWriter, r *http.Request) {
	items, err := ListAll[T](db.DB)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func listActiveHandler[T any](w http.ResponseWriter, r *http.Request) {
	items, err := ListActive[T](db.DB)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func getHandler[T any](w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	e, err := GetByID[T](db.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, e)
}

func createHandler[T any](w http.ResponseWriter, r *http.Request) {
	var e T
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := CreateEntity(db.DB, &e); err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONStatus(w, http.StatusCreated, e)
}

func updateHandler[T any, P interface {
	*T
	SetID(int64)
}](w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	e, err := GetByID[T](db.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	P(e).SetID(id)

	if err := UpdateEntity(db.DB, e); err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, e)
}

func deleteHandler[T any](w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	err = SoftDelete[T](db.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func restoreHandler[T any](w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	err = Restore[T](db.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

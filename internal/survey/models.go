package survey

import (
	"time"

	"gorm.io/gorm"
)

// QuestionCategory groups questions coarsely. Values mirror the ASIS
// spreadsheet curation, so matching against the wire stays name-based.
type QuestionCategory string

const (
	CategoryPersonal  QuestionCategory = "PERSONAL"
	CategoryEducation QuestionCategory = "EDUCACION"
	CategoryEconomic  QuestionCategory = "ECONOMICA"
	CategorySocial    QuestionCategory = "SOCIAL"
	CategoryHealth    QuestionCategory = "SALUD"
	CategoryHousing   QuestionCategory = "VIVIENDA"
)

// AnswerType is the declared shape of a question's answers. Values are
// always persisted as strings regardless of this declaration; numeric
// and date interpretation happens at query time.
type AnswerType string

const (
	AnswerTypeNumber         AnswerType = "NUMERO"
	AnswerTypeText           AnswerType = "TEXTO"
	AnswerTypeMultipleChoice AnswerType = "OPCION_MULTIPLE"
	AnswerTypeDate           AnswerType = "FECHA"
)

// Tombstones is the shared soft-delete lifecycle: rows are never
// physically removed, deletion sets the timestamp and restore clears it.
type Tombstones struct {
	CreatedAt time.Time      `json:"fechaCreacion"`
	UpdatedAt time.Time      `json:"fechaEditado"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"fechaEliminacion,omitempty"`
}

func (t Tombstones) IsActive() bool { return !t.DeletedAt.Valid }

type Question struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	Text        string           `gorm:"type:text" json:"texto"`
	Category    QuestionCategory `json:"categoria"`
	AnswerType  AnswerType       `json:"tipoRespuesta"`
	ExternalKey string           `gorm:"uniqueIndex" json:"preguntaCsv"`
	Tombstones
}

// Survey is one respondent visit; it owns zero or more answers.
type Survey struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	Date       *time.Time `json:"fecha"`
	ExternalID string     `json:"idExterno"`
	CampaignID *int64     `json:"campaniaId"`
	ZoneID     *int64     `json:"zonaId"`
	Tombstones
}

// Answer is a single (survey, question, value) fact. The value is the
// raw spreadsheet cell, stored verbatim.
type Answer struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	SurveyID   int64  `gorm:"index" json:"encuestaId"`
	QuestionID int64  `gorm:"index" json:"preguntaId"`
	Value      string `gorm:"type:text" json:"valor"`
	Tombstones
}

type Campaign struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	Name      string     `json:"nombre"`
	StartDate *time.Time `json:"fechaInicio"`
	EndDate   *time.Time `json:"fechaFin"`
	Tombstones
}

type Neighborhood struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `json:"nombre"`
	Tombstones
}

type Zone struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	Name           string `json:"nombre"`
	Geolocation    string `json:"geolocalizacion"`
	NeighborhoodID *int64 `json:"barrioId"`
	Tombstones
}

type Surveyor struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Tombstones
}

// SetID lets the generic CRUD layer pin the path id on updates.
func (q *Question) SetID(id int64)     { q.ID = id }
func (s *Survey) SetID(id int64)       { s.ID = id }
func (a *Answer) SetID(id int64)       { a.ID = id }
func (c *Campaign) SetID(id int64)     { c.ID = id }
func (n *Neighborhood) SetID(id int64) { n.ID = id }
func (z *Zone) SetID(id int64)         { z.ID = id }
func (s *Surveyor) SetID(id int64)     { s.ID = id }

func (Question) TableName() string     { return "asis.questions" }
func (Survey) TableName() string       { return "asis.surveys" }
func (Answer) TableName() string       { return "asis.answers" }
func (Campaign) TableName() string     { return "asis.campaigns" }
func (Neighborhood) TableName() string { return "asis.neighborhoods" }
func (Zone) TableName() string         { return "asis.zones" }
func (Surveyor) TableName() string     { return "asis.surveyors" }

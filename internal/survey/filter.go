package survey

import (
	"regexp"
	"strconv"
	"strings"
)

// AnswerRow is one active answer joined with its question, flattened to
// plain fields. The engine works on these rows only; joins back to the
// entities happen by id lookup, never by object references.
type AnswerRow struct {
	AnswerID     int64
	SurveyID     int64
	QuestionID   int64
	QuestionText string
	Category     string
	AnswerType   string
	Value        string
}

// Wildcard is the wire literal meaning "match any value for this field".
const Wildcard = "ALL"

// ageQuestionText is the display text of the question the age range
// filter keys on.
const ageQuestionText = "Edad"

// internalQuestionRe matches coded placeholder questions ("0.a.…") that
// must never surface in any projection.
var internalQuestionRe = regexp.MustCompile(`^[0-9]+\.[a-z]\.`)

func isInternalQuestion(text string) bool {
	return internalQuestionRe.MatchString(text)
}

// Term is one field of a filter criterion: either the wildcard or an
// exact, case-insensitive value.
type Term struct {
	any   bool
	value string
}

func AnyTerm() Term           { return Term{any: true} }
func ExactTerm(v string) Term { return Term{value: v} }

func (t Term) Matches(s string) bool {
	return t.any || strings.EqualFold(t.value, s)
}

// Criterion is one multi-criteria filter entry. An answer matches when
// all three terms hold against that single answer.
type Criterion struct {
	Category Term
	Question Term
	Answer   Term
}

func (c Criterion) Matches(r AnswerRow) bool {
	return c.Category.Matches(r.Category) &&
		c.Question.Matches(r.QuestionText) &&
		c.Answer.Matches(r.Value)
}

// MultiFilter is the wire shape of one criterion.
type MultiFilter struct {
	Categoria string `json:"categoria"`
	Pregunta  string `json:"pregunta"`
	Respuesta string `json:"respuesta"`
}

// Criterion converts the wire entry to its tagged form. The entry is
// valid only when all three fields are non-blank; "ALL" in any field
// (case-insensitive) becomes the wildcard.
func (m MultiFilter) Criterion() (Criterion, bool) {
	if strings.TrimSpace(m.Categoria) == "" ||
		strings.TrimSpace(m.Pregunta) == "" ||
		strings.TrimSpace(m.Respuesta) == "" {
		return Criterion{}, false
	}
	return Criterion{
		Category: termFromWire(m.Categoria),
		Question: termFromWire(m.Pregunta),
		Answer:   termFromWire(m.Respuesta),
	}, true
}

func termFromWire(s string) Term {
	if strings.EqualFold(strings.TrimSpace(s), Wildcard) {
		return AnyTerm()
	}
	return ExactTerm(s)
}

// Filtros is the filter request. Only categoria, pregunta, edadDesde,
// edadHasta, tipoRespuesta and filtrosMultiples drive the engine; the
// remaining fields are accepted and ignored.
type Filtros struct {
	Categoria          string        `json:"categoria"`
	Pregunta           string        `json:"pregunta"`
	Zona               string        `json:"zona"`
	Barrio             string        `json:"barrio"`
	Campania           string        `json:"campania"`
	FechaDesde         string        `json:"fechaDesde"`
	FechaHasta         string        `json:"fechaHasta"`
	Sexo               string        `json:"sexo"`
	EdadDesde          *int          `json:"edadDesde"`
	EdadHasta          *int          `json:"edadHasta"`
	OrganizacionSocial string        `json:"organizacionSocial"`
	TipoRespuesta      string        `json:"tipoRespuesta"`
	Perfil             string        `json:"perfil"`
	Jornada            string        `json:"jornada"`
	Encuestador        string        `json:"encuestador"`
	FiltrosMultiples   []MultiFilter `json:"filtrosMultiples"`
}

// ProjectedAnswer is the (question, value, category, survey) tuple
// returned by every projection.
type ProjectedAnswer struct {
	Pregunta   string `json:"pregunta"`
	Respuesta  string `json:"respuesta"`
	Categoria  string `json:"categoria"`
	EncuestaID int64  `json:"encuestaId"`
}

func project(r AnswerRow) ProjectedAnswer {
	return ProjectedAnswer{
		Pregunta:   r.QuestionText,
		Respuesta:  r.Value,
		Categoria:  r.Category,
		EncuestaID: r.SurveyID,
	}
}

// ageQualifiedSurveys returns the survey ids whose age answer falls in
// [from, to]. A nil result means the age filter is unconstrained. Only
// the first "Edad" answer of each survey counts; unparseable values
// disqualify the survey rather than erroring.
func ageQualifiedSurveys(rows []AnswerRow, from, to *int) map[int64]struct{} {
	if from == nil && to == nil {
		return nil
	}

	qualified := make(map[int64]struct{})
	seen := make(map[int64]struct{})
	for _, r := range rows {
		if r.QuestionText != ageQuestionText {
			continue
		}
		if _, ok := seen[r.SurveyID]; ok {
			continue
		}
		seen[r.SurveyID] = struct{}{}

		age, err := strconv.Atoi(strings.TrimSpace(r.Value))
		if err != nil {
			continue
		}
		if from != nil && age < *from {
			continue
		}
		if to != nil && age > *to {
			continue
		}
		qualified[r.SurveyID] = struct{}{}
	}
	return qualified
}

// criteriaQualifiedSurveys returns the survey ids that satisfy every
// criterion, where each criterion needs at least one matching answer of
// that survey (not necessarily the same answer across criteria). A nil
// result means no valid criteria were given.
func criteriaQualifiedSurveys(rows []AnswerRow, crits []Criterion) map[int64]struct{} {
	if len(crits) == 0 {
		return nil
	}

	// matched[survey][i] records whether criterion i was hit by any
	// answer of that survey.
	matched := make(map[int64][]bool)
	for _, r := range rows {
		hits, ok := matched[r.SurveyID]
		if !ok {
			hits = make([]bool, len(crits))
			matched[r.SurveyID] = hits
		}
		for i, c := range crits {
			if !hits[i] && c.Matches(r) {
				hits[i] = true
			}
		}
	}

	qualified := make(map[int64]struct{})
	for surveyID, hits := range matched {
		all := true
		for _, h := range hits {
			if !h {
				all = false
				break
			}
		}
		if all {
			qualified[surveyID] = struct{}{}
		}
	}
	return qualified
}

// FilterAnswers evaluates the compound filter over the active answer
// rows and projects the survivors in input order.
func FilterAnswers(rows []AnswerRow, f Filtros) []ProjectedAnswer {
	// The exclusion rule applies before any predicate: internal coded
	// questions never participate, not even in survey qualification.
	active := make([]AnswerRow, 0, len(rows))
	for _, r := range rows {
		if !isInternalQuestion(r.QuestionText) {
			active = append(active, r)
		}
	}

	var crits []Criterion
	for _, m := range f.FiltrosMultiples {
		if c, ok := m.Criterion(); ok {
			crits = append(crits, c)
		}
	}

	byAge := ageQualifiedSurveys(active, f.EdadDesde, f.EdadHasta)
	byCriteria := criteriaQualifiedSurveys(active, crits)

	out := []ProjectedAnswer{}
	for _, r := range active {
		if f.Categoria != "" && !strings.EqualFold(r.Category, f.Categoria) {
			continue
		}
		if f.Pregunta != "" && !strings.EqualFold(r.QuestionText, f.Pregunta) {
			continue
		}
		if f.TipoRespuesta != "" && !strings.EqualFold(r.AnswerType, f.TipoRespuesta) {
			continue
		}
		if byAge != nil {
			if _, ok := byAge[r.SurveyID]; !ok {
				continue
			}
		}
		if byCriteria != nil {
			if _, ok := byCriteria[r.SurveyID]; !ok {
				continue
			}
			// Within a qualifying survey only the answers that match
			// some criterion are displayed.
			hit := false
			for _, c := range crits {
				if c.Matches(r) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		out = append(out, project(r))
	}
	return out
}

// ProjectByCategory is the no-filters primitive: every active answer,
// minus internal questions, optionally restricted to one category.
func ProjectByCategory(rows []AnswerRow, categoria string) []ProjectedAnswer {
	out := []ProjectedAnswer{}
	for _, r := range rows {
		if isInternalQuestion(r.QuestionText) {
			continue
		}
		if categoria != "" && !strings.EqualFold(r.Category, categoria) {
			continue
		}
		out = append(out, project(r))
	}
	return out
}

// QuestionTextsByCategory lists the distinct question texts seen in the
// active answers, first-seen order, optionally restricted to a category.
func QuestionTextsByCategory(rows []AnswerRow, categoria string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range rows {
		if isInternalQuestion(r.QuestionText) {
			continue
		}
		if categoria != "" && !strings.EqualFold(r.Category, categoria) {
			continue
		}
		if _, ok := seen[r.QuestionText]; ok {
			continue
		}
		seen[r.QuestionText] = struct{}{}
		out = append(out, r.QuestionText)
	}
	return out
}

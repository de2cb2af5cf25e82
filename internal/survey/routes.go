package survey

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vals999/asis-backend/internal/middleware"
)

// Coordinate question import keys, set once at startup from config.
var (
	latQuestionKey string
	lonQuestionKey string
)

// SetupRoutes mounts the survey-domain routes. Reads are public; all
// mutating routes require a session.
func SetupRoutes(fetcher middleware.SessionFetcher, latKey, lonKey string) http.Handler {
	latQuestionKey = latKey
	lonQuestionKey = lonKey

	r := chi.NewRouter()

	r.Route("/respuestas-encuesta", func(r chi.Router) {
		r.Get("/preguntas-por-categoria", QuestionsByCategoryHandler)
		r.Get("/preguntas-respuestas-categoria", AnswersByCategoryHandler)
		r.Post("/filtrar-preguntas-respuestas", FilterHandler)
		r.Get("/coordenadas-mapa", MapCoordinatesHandler)
		r.Get("/coordenadas-filtradas", FilteredCoordinatesHandler)
		r.Get("/respuestas-unicas", UniqueAnswersByQuestionKeyHandler)
		mountCRUD[Answer](r, fetcher, "/activas")
	})

	r.Route("/preguntas-encuesta", func(r chi.Router) {
		mountCRUD[Question](r, fetcher, "/activas")
	})
	r.Route("/encuestas", func(r chi.Router) {
		mountCRUD[Survey](r, fetcher, "/activas")
	})
	r.Route("/campanias", func(r chi.Router) {
		mountCRUD[Campaign](r, fetcher, "/activas")
	})
	r.Route("/barrios", func(r chi.Router) {
		mountCRUD[Neighborhood](r, fetcher, "/activos")
	})
	r.Route("/zonas", func(r chi.Router) {
		mountCRUD[Zone](r, fetcher, "/activas")
	})
	r.Route("/encuestadores", func(r chi.Router) {
		mountCRUD[Surveyor](r, fetcher, "/activos")
	})

	return r
}

// mountCRUD registers the shared entity lifecycle routes: list, active
// list, fetch, create, update, soft-delete, restore.
func mountCRUD[T any, P interface {
	*T
	SetID(int64)
}](r chi.Router, fetcher middleware.SessionFetcher, activePath string) {
	r.Get("/", listAllHandler[T])
	r.Get(activePath, listActiveHandler[T])
	r.Get("/{id}", getHandler[T])

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(fetcher))
		r.Post("/", createHandler[T])
		r.Put("/{id}", updateHandler[T, P])
		r.Delete("/{id}", deleteHandler[T])
		r.Put("/{id}/recuperar", restoreHandler[T])
	})
}

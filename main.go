package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/vals999/asis-backend/internal/auth"
	"github.com/vals999/asis-backend/internal/config"
	"github.com/vals999/asis-backend/internal/db"
	"github.com/vals999/asis-backend/internal/middleware"
	"github.com/vals999/asis-backend/internal/survey"
	"github.com/vals999/asis-backend/internal/surveyimport"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect()

	auth.Init()
	survey.Init()
	surveyimport.Init()

	fetcher := auth.SessionInfo{}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/import-csv", surveyimport.SetupRoutes(fetcher, cfg.ImportRatePerMinute))
	r.Mount("/", survey.SetupRoutes(fetcher, cfg.LatQuestionKey, cfg.LonQuestionKey))

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}

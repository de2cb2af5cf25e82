package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vals999/asis-backend/internal/db"
	"github.com/vals999/asis-backend/internal/survey"
	"github.com/vals999/asis-backend/internal/surveyimport"
)

// One-shot CSV importer for running bulk loads without the HTTP server.
func main() {
	_ = godotenv.Load(".env.local")

	var (
		csvPath = flag.String("csv", "", "path to survey CSV export")
		dbURL   = flag.String("db", os.Getenv("DATABASE_URL"), "Postgres DSN")
	)
	flag.Parse()

	if *csvPath == "" || *dbURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sqlDB, err := sql.Open("pgx", *dbURL)
	if err != nil {
		log.Fatal("connect: ", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatal("ping: ", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatal("gorm: ", err)
	}

	if err := db.EnsureSchema(gdb, "asis"); err != nil {
		log.Fatal("schema: ", err)
	}

	if err := gdb.AutoMigrate(
		&survey.Question{}, &survey.Survey{}, &survey.Answer{},
		&surveyimport.ImportJob{},
	); err != nil {
		log.Fatal("migrate: ", err)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal("open: ", err)
	}
	defer f.Close()

	report, err := surveyimport.Run(gdb, f, filepath.Base(*csvPath))
	if err != nil {
		log.Fatal("import: ", err)
	}

	fmt.Printf("imported %d rows: %d surveys, %d answers, %d new questions\n",
		report.Rows, report.Surveys, report.Answers, report.Questions)
	for _, msg := range report.RowErrors {
		fmt.Println("skipped:", msg)
	}
}

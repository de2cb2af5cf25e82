package surveyimport

import (
	"log"

	"github.com/vals999/asis-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "asis"); err != nil {
		log.Fatal("Failed to ensure asis schema: ", err)
	}

	if err := db.DB.AutoMigrate(&ImportJob{}); err != nil {
		log.Fatal("Failed to migrate import tables: ", err)
	}

	log.Println("[import] tables ready")
}

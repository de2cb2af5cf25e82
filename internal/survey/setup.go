package survey

import (
	"log"

	"github.com/vals999/asis-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "asis"); err != nil {
		log.Fatal("Failed to create asis schema: ", err)
	}

	if err := db.DB.AutoMigrate(
		&Question{}, &Survey{}, &Answer{},
		&Campaign{}, &Neighborhood{}, &Zone{}, &Surveyor{},
	); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}

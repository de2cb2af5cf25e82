package surveyimport

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/vals999/asis-backend/internal/db"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// UploadHandler ingests one uploaded CSV (multipart field "file"). The
// upload is spooled to a temp file first so a broken client connection
// cannot abort an import halfway through the stream.
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "import_*.csv")
	if err != nil {
		http.Error(w, "Failed to stage upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		http.Error(w, "Failed to stage upload", http.StatusInternalServerError)
		return
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		http.Error(w, "Failed to stage upload", http.StatusInternalServerError)
		return
	}

	report, err := Run(db.DB, tmp, header.Filename)
	if err != nil {
		// No rollback: whatever was written before the failure stays.
		log.Printf("[import] %s failed: %v", header.Filename, err)
		http.Error(w, "Error importing file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("[import] %s: %d rows, %d surveys, %d answers, %d new questions, %d skipped rows",
		header.Filename, report.Rows, report.Surveys, report.Answers, report.Questions, len(report.RowErrors))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/convert"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/exporter"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/normalize"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/store"
)

// ConvertResponse is the JSON body returned by POST /api/convert.
type ConvertResponse struct {
	RunID         string           `json:"runId"`
	Records       int              `json:"records"`
	ColumnMapping []string         `json:"columnMapping"`
	Issues        []string         `json:"issues"`
	AddedColumns  []string         `json:"addedColumns"`
	Summary       exporter.Summary `json:"summary"`
	JS            string           `json:"js"`
}

// GetStatus reports service information.
// GET /api/status
func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "classifier-converter",
		"sheetName": s.cfg.Convert.SheetName,
		"history":   s.store != nil,
	})
}

// Convert accepts a multipart workbook upload and returns the conversion
// report plus the generated JavaScript content.
// POST /api/convert
func (s *Server) Convert(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	inputPath := filepath.Join(os.TempDir(), fmt.Sprintf("classifier_upload_%d_%s", time.Now().UnixNano(), filepath.Base(upload.Filename)))
	if err := c.SaveUploadedFile(upload, inputPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(inputPath)

	outputPath := inputPath + ".js"
	defer os.Remove(outputPath)

	result, err := convert.Run(convert.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		SheetName:  s.cfg.Convert.SheetName,
		Generator:  s.cfg.Convert.Generator,
		Rules:      normalize.DefaultRules(),
	})
	s.recordRun(upload.Filename, result, err)
	if err != nil {
		status := http.StatusUnprocessableEntity
		var notFound *convert.NotFoundError
		if errors.As(err, &notFound) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	js, err := os.ReadFile(outputPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read generated file"})
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		RunID:         result.RunID,
		Records:       result.Records,
		ColumnMapping: result.MappingLines,
		Issues:        result.Issues,
		AddedColumns:  result.AddedColumns,
		Summary:       result.Summary,
		JS:            string(js),
	})
}

// ListRuns returns the recent conversion history.
// GET /api/runs
func (s *Server) ListRuns(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"runs": []*store.ConversionRun{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := s.store.RecentRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) recordRun(inputName string, result *convert.Result, runErr error) {
	if s.store == nil {
		return
	}

	run := &store.ConversionRun{
		InputFile: inputName,
		Status:    store.RunStatusOK,
		StartedAt: time.Now(),
	}
	if result != nil {
		run.RunID = result.RunID
		run.RecordCount = result.Records
		run.WarningCount = len(result.Issues)
		run.StartedAt = result.StartedAt
	}
	if runErr != nil {
		run.Status = store.RunStatusError
		run.ErrorMessage = runErr.Error()
	}
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}

	if err := s.store.RecordRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record run history: %v\n", err)
	}
}

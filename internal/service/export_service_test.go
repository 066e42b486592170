package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolify/leads-api/internal/models"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

type stubRecordLister struct {
	records []models.LeadRecord
}

func (s *stubRecordLister) List(_ context.Context, _, _ int) ([]models.LeadRecord, error) {
	return s.records, nil
}

func exportFixture() *stubRecordLister {
	return &stubRecordLister{records: []models.LeadRecord{
		{ID: 1, DNI: "12345678", Name: "pepe", Subject: "anatomy", ClassDuration: 8, EnrollTimes: 1, Career: "medicine", YearEnroll: 2024},
		{ID: 2, DNI: "87654321", Name: "ana", Subject: "physiology", ClassDuration: 6, EnrollTimes: 2, Career: "medicine", YearEnroll: 2023},
	}}
}

func TestExportServiceCSV(t *testing.T) {
	svc := NewExportService(exportFixture(), 100, nil)

	result, err := svc.Export(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "records.csv", result.Filename)

	content := string(result.Content)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "dni")
	assert.Contains(t, lines[1], "12345678")
	assert.Contains(t, lines[2], "physiology")
}

func TestExportServicePDF(t *testing.T) {
	svc := NewExportService(exportFixture(), 100, nil)

	result, err := svc.Export(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	svc := NewExportService(exportFixture(), 100, nil)

	_, err := svc.Export(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

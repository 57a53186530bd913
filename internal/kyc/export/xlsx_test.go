package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kycagent/internal/checklist"
	"kycagent/internal/kyc/models"
)

func TestChecklistXLSX(t *testing.T) {
	items := checklist.Map([]models.ExtractedEntity{{
		Type:  "full_name",
		Value: "Jane Roe",
		Source: models.EntitySource{
			Document:    "d1",
			Page:        1,
			Coordinates: &models.Coordinates{X: 100, Y: 200, Width: 150, Height: 30},
		},
	}}, checklist.Template())

	data, err := ChecklistXLSX(items, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ChecklistSheet)
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, checklistHeaders, rows[0])
	assert.Equal(t, []string{"full_name", "Full Name", "Customer's full legal name", "yes", "complete", "Jane Roe", "d1", "1", "100,200 150x30"}, rows[1])
	assert.Equal(t, "pending", rows[2][4])

	pending, err := f.GetRows(PendingSheet)
	require.NoError(t, err)
	require.Len(t, pending, 7)
	assert.Equal(t, "Pending required items", pending[0][0])
	assert.Equal(t, "Generated 2026-03-01T12:00:00Z", pending[0][1])
	assert.Equal(t, "Date of Birth", pending[1][0])
	assert.Equal(t, "Email Address", pending[6][0])
}

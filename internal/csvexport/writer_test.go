package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

func TestWritePeriodSummaries(t *testing.T) {
	periods := []gst.PeriodSummary{
		{
			Year: "2024", Month: "04", InvoiceCount: 2,
			TaxableValue: 3000, CGST: 270, SGST: 270, IGST: 0,
			TotalGST: 540, GrandTotal: 3540,
		},
	}

	var buf bytes.Buffer
	err := csvexport.WritePeriodSummaries(&buf, periods)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "output should start with a UTF-8 BOM")

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xEF\xBB\xBF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Year", records[0][0])
	assert.Equal(t, []string{"2024", "04", "2", "3000.00", "270.00", "270.00", "0.00", "540.00", "3540.00"}, records[1])
}

func TestWritePeriodSummaries_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := csvexport.WritePeriodSummaries(&buf, nil)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteHSNBreakdown(t *testing.T) {
	itemID := uuid.New()
	catalog := gst.Catalog{
		itemID: &domain.CatalogItem{ID: itemID, Name: "Steel Rod", HSNSAC: "7214", GSTRate: 18},
	}
	lines := []domain.InvoiceLineItem{
		{CatalogItemID: itemID, Quantity: 2, UnitPrice: 500},
	}
	breakdown := gst.ComputeBreakdown(lines, catalog, "Karnataka", "Karnataka")

	var buf bytes.Buffer
	err := csvexport.WriteHSNBreakdown(&buf, breakdown)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "7214", records[1][0])
	assert.Equal(t, "1000.00", records[1][1])
	assert.Equal(t, "9%", records[1][2])
	assert.Equal(t, "90.00", records[1][3])

	assert.Equal(t, "Total", records[2][0])
	assert.Equal(t, "180.00", records[2][8])
}

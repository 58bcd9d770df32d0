package workbook_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/geoirb/seller-sync/internal/parser"
	"github.com/geoirb/seller-sync/internal/workbook"
)

func writeFixture(t *testing.T, dir string) string {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "GMS_AGG")
	f.SetCellValue("GMS_AGG", "A1", "merchant_customer_id")
	f.SetCellValue("GMS_AGG", "B1", "seller_name")
	f.SetCellValue("GMS_AGG", "A2", 1001)
	f.SetCellValue("GMS_AGG", "B2", "Acme Co.!")
	f.NewSheet("GMS_SKU")
	f.SetCellValue("GMS_SKU", "A1", "merchant_customer_id")
	f.SetCellValue("GMS_SKU", "B1", "sku")

	path := filepath.Join(dir, "data.xlsx")
	assert.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	p, err := parser.New()
	assert.NoError(t, err)
	loader := workbook.NewLoader(p)

	path := writeFixture(t, t.TempDir())
	tables, err := loader.Load(path)
	assert.NoError(t, err)

	agg, ok := tables["GMS_AGG"]
	assert.True(t, ok)
	assert.Equal(t, []string{"merchant_customer_id", "seller_name"}, agg.Header)
	assert.Len(t, agg.Rows, 1)
	assert.Equal(t, "Acme Co.!", workbook.Cell(agg.Rows[0], 1))
	assert.Equal(t, "", workbook.Cell(agg.Rows[0], 5))

	sku, ok := tables["GMS_SKU"]
	assert.True(t, ok)
	assert.Empty(t, sku.Rows)
}

func TestLoadWrongType(t *testing.T) {
	p, err := parser.New()
	assert.NoError(t, err)
	loader := workbook.NewLoader(p)

	_, err = loader.Load("data.csv")
	assert.Error(t, err)
}

func TestCoerceID(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		id, err := workbook.CoerceID("1001")
		assert.NoError(t, err)
		assert.Equal(t, int64(1001), id)
	})

	t.Run("float rendering", func(t *testing.T) {
		id, err := workbook.CoerceID("1001.0")
		assert.NoError(t, err)
		assert.Equal(t, int64(1001), id)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := workbook.CoerceID("acme")
		assert.Error(t, err)
	})
}

package importer

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheetBuffer(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func multipartUpload(t *testing.T, units string, sheet io.Reader) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("units", units))
	fw, err := mw.CreateFormFile("file", "readings.xlsx")
	require.NoError(t, err)
	_, err = io.Copy(fw, sheet)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportChiller(t *testing.T) {
	sheet := sheetBuffer(t, [][]interface{}{
		{"cooling_capacity", "power_input_kw"},
		{100, 60},
		{"garbage", "row"},
		{350, 70},
		{100, 0}, // division by zero, skipped
	})

	rr := httptest.NewRecorder()
	h := &Handler{}
	h.Chiller(rr, multipartUpload(t, "SI", sheet))

	require.Equal(t, http.StatusOK, rr.Code)
	var out ChillerImportResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Results, 2)
	assert.InDelta(t, 100.0/60.0, out.Results[0].COP, 1e-9)
	assert.InDelta(t, 5.0, out.Results[1].COP, 1e-9)
}

func TestImportChillerUnitsApplyToAllRows(t *testing.T) {
	sheet := sheetBuffer(t, [][]interface{}{
		{"cooling_capacity", "power_input_kw"},
		{100, 60},
	})

	rr := httptest.NewRecorder()
	h := &Handler{}
	h.Chiller(rr, multipartUpload(t, "I-P", sheet))

	require.Equal(t, http.StatusOK, rr.Code)
	var out ChillerImportResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	require.Equal(t, 1, out.Count)
	assert.InDelta(t, 0.6, out.Results[0].KWPerTon, 1e-9) // tons-based branch
}

func TestImportChillerRejectsBadUnits(t *testing.T) {
	sheet := sheetBuffer(t, [][]interface{}{
		{"cooling_capacity", "power_input_kw"},
		{100, 60},
	})

	rr := httptest.NewRecorder()
	h := &Handler{}
	h.Chiller(rr, multipartUpload(t, "metric", sheet))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid units")
}

func TestImportChillerRejectsHeaderOnlySheet(t *testing.T) {
	sheet := sheetBuffer(t, [][]interface{}{
		{"cooling_capacity", "power_input_kw"},
	})

	rr := httptest.NewRecorder()
	h := &Handler{}
	h.Chiller(rr, multipartUpload(t, "SI", sheet))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Empty sheet")
}

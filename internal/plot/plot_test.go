package plot

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kelvin/internal/calc/copcurve"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWritePNG(t *testing.T) {
	curve := copcurve.Calculate(copcurve.Input{COP: 5})
	require.Len(t, curve.Points, 4)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, curve.Points))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output is a PNG image")
}

func TestWritePNGRejectsSinglePoint(t *testing.T) {
	curve := copcurve.Calculate(copcurve.Input{COP: 5, LoadPercents: []int{100}})

	var buf bytes.Buffer
	err := WritePNG(&buf, curve.Points)
	require.ErrorIs(t, err, ErrTooFewPoints)
	assert.Zero(t, buf.Len())
}

func TestHandlerCOPLoad(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"cop": 5}`))
	rr := httptest.NewRecorder()
	h.COPLoad(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), pngMagic))
}

func TestHandlerCOPLoadTooFewPoints(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"cop": 5, "load_percents": [100]}`))
	rr := httptest.NewRecorder()
	h.COPLoad(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "at least two points")
}

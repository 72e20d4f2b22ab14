package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyward-analytics/flightrisk/internal/config"
	"github.com/skyward-analytics/flightrisk/internal/model"
)

const sampleCSV = `TAIL_NUMBER,ORIGIN,DESTINATION_AIRPORT,MKT_UNIQUE_CARRIER,DEP_DELAY,WEATHER_DELAY,SECURITY_DELAY,CRS_ARR_TIME
N1,JFK,LAX,AA,20,10,0,2350
N2,EWR,SFO,DL,0,0,0,0915
`

func testServer() *Server {
	return New(config.ServerConfig{
		UploadRPS:    100,
		UploadBurst:  100,
		MaxBodyBytes: 1 << 20,
	}, config.IngestConfig{})
}

func upload(t *testing.T, srv http.Handler, body string) uploadResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestUpload_ReturnsSummaryAndAssessments(t *testing.T) {
	router := testServer().Router()
	resp := upload(t, router, sampleCSV)

	assert.NotEmpty(t, resp.DatasetID)
	assert.Equal(t, 2, resp.Summary.TotalFlights)
	assert.Equal(t, []string{"N1", "N2"}, resp.Summary.Tails)
	require.Len(t, resp.Assessments, 2)
	assert.Equal(t, "N1", resp.Assessments[0].FlightID)
	assert.Equal(t, "00:20", resp.Assessments[0].Delay.ProjectedArrival)
}

func TestUpload_StructuralErrorRejected(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", strings.NewReader("ORIGIN,DEST\n"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary(t *testing.T) {
	router := testServer().Router()
	resp := upload(t, router, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/"+resp.DatasetID+"/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sum model.DatasetSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 2, sum.TotalFlights)
	assert.Equal(t, []string{"EWR → SFO", "JFK → LAX"}, sum.Routes)
}

func TestGetSummary_LatestAlias(t *testing.T) {
	router := testServer().Router()
	upload(t, router, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/latest/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSummary_UnknownDataset(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/nope/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFlight(t *testing.T) {
	router := testServer().Router()
	resp := upload(t, router, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/"+resp.DatasetID+"/flights/N1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.FlightAssessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "N1", result.FlightID)
	assert.Equal(t, "JFK → LAX", result.RouteKey)
	assert.Equal(t, model.RiskMedium, result.Risk.Carrier)
	assert.Equal(t, 30, result.Delay.PredictedDelayMinutes)
}

func TestGetFlight_Miss(t *testing.T) {
	router := testServer().Router()
	resp := upload(t, router, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/"+resp.DatasetID+"/flights/N9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFlights(t *testing.T) {
	router := testServer().Router()
	resp := upload(t, router, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/"+resp.DatasetID+"/flights", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var lists map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lists))
	assert.Equal(t, []string{"N1", "N2"}, lists["tails"])
	assert.Equal(t, []string{"EWR → SFO", "JFK → LAX"}, lists["routes"])
}

func TestUpload_RateLimited(t *testing.T) {
	srv := New(config.ServerConfig{
		UploadRPS:    0, // zero rate: the first request already exceeds it
		UploadBurst:  0,
		MaxBodyBytes: 1 << 20,
	}, config.IngestConfig{})
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", strings.NewReader(sampleCSV))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHealth(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

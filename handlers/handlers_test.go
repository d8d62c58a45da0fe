package handlers

import (
	"MedClinic/config"
	"MedClinic/database"
	"MedClinic/repositories"
	"MedClinic/services"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{DBDriver: config.DriverSQLite, DBName: ":memory:"}
	db, err := database.InitDB(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	doctorRepo := repositories.NewDoctorRepository(db, nil, zerolog.Nop())
	patientRepo := repositories.NewPatientRepository(db, nil, zerolog.Nop())
	doctorHandler := NewDoctorHandler(services.NewDoctorService(doctorRepo), zerolog.Nop())
	patientHandler := NewPatientHandler(services.NewPatientService(patientRepo, doctorRepo), zerolog.Nop())

	router := gin.New()
	router.POST("/doctors/", doctorHandler.CreateDoctor)
	router.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	router.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
	router.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
	router.POST("/patients/", patientHandler.CreatePatient)
	router.GET("/patients/:id", patientHandler.GetPatientByID)
	router.PUT("/patients/:id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:id", patientHandler.DeletePatient)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestDoctorHandler_CRUD(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/doctors/", `{"name":"Alice","specialty":"Cardiology"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "Cardiology", body["specialty"])

	w, body = doJSON(t, router, http.MethodGet, "/doctors/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", body["name"])

	w, body = doJSON(t, router, http.MethodPut, "/doctors/1", `{"specialty":"Neurology","name":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "Neurology", body["specialty"])

	w, body = doJSON(t, router, http.MethodDelete, "/doctors/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Doctor deleted successfully", body["message"])

	w, body = doJSON(t, router, http.MethodGet, "/doctors/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Doctor not found", body["error"])
}

func TestDoctorHandler_NotFound(t *testing.T) {
	router := setupRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w, body := doJSON(t, router, method, "/doctors/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "Doctor not found", body["error"], method)
	}

	w, body := doJSON(t, router, http.MethodPut, "/doctors/42", `{"name":"Zed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Doctor not found", body["error"])
}

func TestDoctorHandler_BadRequests(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"non integer id", http.MethodGet, "/doctors/abc", ""},
		{"zero id", http.MethodGet, "/doctors/0", ""},
		{"missing fields", http.MethodPost, "/doctors/", `{"name":"Alice"}`},
		{"malformed json", http.MethodPost, "/doctors/", `{"name":`},
		{"name too long", http.MethodPost, "/doctors/", `{"name":"` + strings.Repeat("a", 101) + `","specialty":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, body, "error")
		})
	}
}

func TestDoctorHandler_ValidationErrorsAreKeyedByField(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/doctors/", `{"name":"Alice"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "specialty")
	assert.NotContains(t, fields, "name")
}

func TestDoctorHandler_CreateFromFormAndQuery(t *testing.T) {
	router := setupRouter(t)

	form := url.Values{"name": {"Alice"}, "specialty": {"Cardiology"}}
	req := httptest.NewRequest(http.MethodPost, "/doctors/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/doctors/?name=Bob&specialty=Surgery", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Bob"`)
}

func TestPatientHandler_CRUD(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/doctors/", `{"name":"Alice","specialty":"Cardiology"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/doctors/", `{"name":"Carol","specialty":"Pediatrics"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, router, http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"1990-05-17","doctor_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "1990-05-17", body["date_born"])
	assert.Equal(t, float64(1), body["doctor_id"])
	assert.NotContains(t, body, "date_of_birth")

	w, body = doJSON(t, router, http.MethodPut, "/patients/1", `{"doctor_id":2,"date_of_birth":"1991-01-02"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bob", body["name"])
	assert.Equal(t, "1991-01-02", body["date_born"])
	assert.Equal(t, float64(2), body["doctor_id"])

	w, body = doJSON(t, router, http.MethodGet, "/patients/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["doctor_id"])

	w, body = doJSON(t, router, http.MethodDelete, "/patients/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient deleted successfully", body["message"])

	w, body = doJSON(t, router, http.MethodDelete, "/patients/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Patient not found", body["error"])
}

func TestPatientHandler_UnknownDoctor(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"1990-05-17","doctor_id":7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Doctor with id 7 not found", body["error"])

	w, _ = doJSON(t, router, http.MethodPost, "/doctors/", `{"name":"Alice","specialty":"Cardiology"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"1990-05-17","doctor_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doJSON(t, router, http.MethodPut, "/patients/1", `{"name":"Robert","doctor_id":9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Doctor with id 9 not found", body["error"])

	w, body = doJSON(t, router, http.MethodGet, "/patients/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bob", body["name"])
}

func TestPatientHandler_BadRequests(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"bad date", http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"17/05/1990","doctor_id":1}`},
		{"missing doctor", http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"1990-05-17"}`},
		{"doctor id not a number", http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"1990-05-17","doctor_id":"one"}`},
		{"non integer id", http.MethodDelete, "/patients/x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPatientHandler_UpdateMissing(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPut, "/patients/5", `{"name":"Bob"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Patient not found", body["error"])
}

func TestHandlers_UpdateWithEmptyBodyChangesNothing(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/doctors/", `{"name":"Alice","specialty":"Cardiology"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/patients/", `{"name":"Bob","date_of_birth":"1990-05-17","doctor_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{"/doctors/1", "/patients/1"} {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(""))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"name":`, path)
	}

	w, body := doJSON(t, router, http.MethodGet, "/doctors/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "Cardiology", body["specialty"])

	req := httptest.NewRequest(http.MethodPut, "/doctors/9", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/depastori/clinica-psi/internal/domain/directory/mocks"
	"github.com/depastori/clinica-psi/internal/middleware"
	"github.com/depastori/clinica-psi/internal/models"
)

func authenticated(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextPractitionerID, id)
		c.Next()
	}
}

func TestPatientSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := uuid.New()

	t.Run("trims the query and caps results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mocks.NewMockDirectory(ctrl)

		dir.EXPECT().
			SearchPatients(gomock.Any(), owner, "ana", patientSearchLimit).
			Return([]models.Patient{{ID: uuid.New(), PractitionerID: owner, FullName: "Ana Souza"}}, nil)

		r := gin.New()
		r.GET("/patients", authenticated(owner), NewPatientHandler(dir).Search)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients?query=%20ana%20", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Ana Souza") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mocks.NewMockDirectory(ctrl)

		dir.EXPECT().
			SearchPatients(gomock.Any(), owner, "", patientSearchLimit).
			Return(nil, nil)

		r := gin.New()
		r.GET("/patients", authenticated(owner), NewPatientHandler(dir).Search)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients", nil))

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"data":[]`) {
			t.Fatalf("expected empty data, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("directory failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mocks.NewMockDirectory(ctrl)

		dir.EXPECT().
			SearchPatients(gomock.Any(), owner, "x", patientSearchLimit).
			Return(nil, errors.New("db down"))

		r := gin.New()
		r.GET("/patients", authenticated(owner), NewPatientHandler(dir).Search)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients?query=x", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestGetMeUnknownPractitioner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := uuid.New()

	ctrl := gomock.NewController(t)
	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().GetPractitioner(gomock.Any(), owner).Return(nil, errors.New("record not found"))

	r := gin.New()
	r.GET("/me", authenticated(owner), NewMeHandler(dir).GetMe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	// erro que não é ErrNotFound vira 500
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func serveWithRole(t *testing.T, gate func(http.Handler) http.Handler, roleID int) int {
	t.Helper()

	handler := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	user := &entity.User{ID: 1, Username: "someone", RoleID: roleID}
	req = req.WithContext(context.WithValue(req.Context(), middleware.AuthUserKey, user))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name   string
		gate   func(http.Handler) http.Handler
		roleID int
		want   int
	}{
		{"admin allowed", middleware.RequireAdmin, entity.RoleIDAdmin, http.StatusOK},
		{"patient blocked from admin", middleware.RequireAdmin, entity.RoleIDPatient, http.StatusForbidden},
		{"doctor blocked from admin", middleware.RequireAdmin, entity.RoleIDDoctor, http.StatusForbidden},
		{"receptionist at the desk", middleware.RequireAdminOrReceptionist, entity.RoleIDReceptionist, http.StatusOK},
		{"admin at the desk", middleware.RequireAdminOrReceptionist, entity.RoleIDAdmin, http.StatusOK},
		{"doctor blocked from desk", middleware.RequireAdminOrReceptionist, entity.RoleIDDoctor, http.StatusForbidden},
		{"patient blocked from desk", middleware.RequireAdminOrReceptionist, entity.RoleIDPatient, http.StatusForbidden},
		{"staff gate admits doctor", middleware.RequireStaff, entity.RoleIDDoctor, http.StatusOK},
		{"staff gate blocks patient", middleware.RequireStaff, entity.RoleIDPatient, http.StatusForbidden},
		{"patient gate", middleware.RequirePatient, entity.RoleIDPatient, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serveWithRole(t, tc.gate, tc.roleID))
		})
	}
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	handler := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

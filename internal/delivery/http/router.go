package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	staffHandler   *handler.StaffHandler
	patientHandler *handler.PatientHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	staffHandler *handler.StaffHandler,
	patientHandler *handler.PatientHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		staffHandler:   staffHandler,
		patientHandler: patientHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPut)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.staffHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.staffHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.staffHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.staffHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Receptionist management (admin)
	admin.HandleFunc("/receptionists", r.staffHandler.CreateReceptionist).Methods(http.MethodPost)
	admin.HandleFunc("/receptionists", r.staffHandler.GetAllReceptionists).Methods(http.MethodGet)
	admin.HandleFunc("/receptionists/{id}", r.staffHandler.UpdateReceptionist).Methods(http.MethodPut)
	admin.HandleFunc("/receptionists/{id}", r.staffHandler.DeleteReceptionist).Methods(http.MethodDelete)

	// Token ledger (admin)
	admin.HandleFunc("/tokens", r.staffHandler.GetTokens).Methods(http.MethodGet)

	// Front-desk routes (admin or receptionist)
	reception := api.PathPrefix("/receptionist").Subrouter()
	reception.Use(r.authMiddleware.Authenticate)
	reception.Use(middleware.RequireAdminOrReceptionist)
	reception.HandleFunc("/patients/search", r.patientHandler.SearchPatient).Methods(http.MethodGet)
	reception.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

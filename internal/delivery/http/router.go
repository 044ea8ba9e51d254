package http

import (
	"net/http"

	"clinic-booking-service/internal/delivery/http/handler"
	"clinic-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	specialtyHandler    *handler.SpecialtyHandler
	roomHandler         *handler.RoomHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	invoiceHandler      *handler.InvoiceHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	specialtyHandler *handler.SpecialtyHandler,
	roomHandler *handler.RoomHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	invoiceHandler *handler.InvoiceHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		specialtyHandler:    specialtyHandler,
		roomHandler:         roomHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		invoiceHandler:      invoiceHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Read routes (any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	protected.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id:[0-9]+}/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet)

	protected.HandleFunc("/specialties", r.specialtyHandler.ListSpecialties).Methods(http.MethodGet)
	protected.HandleFunc("/specialties/{id:[0-9]+}", r.specialtyHandler.GetSpecialty).Methods(http.MethodGet)

	protected.HandleFunc("/rooms", r.roomHandler.ListRooms).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{id:[0-9]+}", r.roomHandler.GetRoom).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/upcoming", r.appointmentHandler.ListUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/number/{number}", r.appointmentHandler.GetAppointmentByNumber).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}/prescriptions", r.prescriptionHandler.ListByAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}/invoice", r.invoiceHandler.GetInvoiceByAppointment).Methods(http.MethodGet)

	protected.HandleFunc("/prescriptions/{id:[0-9]+}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id:[0-9]+}", r.invoiceHandler.GetInvoice).Methods(http.MethodGet)

	// Staff routes (admin and receptionist): registry and scheduling writes
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	staff.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	staff.HandleFunc("/rooms/{id:[0-9]+}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)
	staff.HandleFunc("/rooms/{id:[0-9]+}", r.roomHandler.DeleteRoom).Methods(http.MethodDelete)

	staff.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id:[0-9]+}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/appointments/{id:[0-9]+}/reschedule", r.appointmentHandler.Reschedule).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	staff.HandleFunc("/appointments/{id:[0-9]+}/invoice", r.invoiceHandler.CreateInvoice).Methods(http.MethodPost)
	staff.HandleFunc("/invoices/{id:[0-9]+}/pay", r.invoiceHandler.PayInvoice).Methods(http.MethodPost)

	// Clinical routes (admin and doctor): prescriptions
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireClinical)

	clinical.HandleFunc("/appointments/{id:[0-9]+}/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	clinical.HandleFunc("/prescriptions/{id:[0-9]+}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	// Admin routes: doctor registry, specialties, users, audit trail
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id:[0-9]+}/specialties", r.doctorHandler.AssignSpecialty).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id:[0-9]+}/specialties/{specialtyId:[0-9]+}", r.doctorHandler.UnassignSpecialty).Methods(http.MethodDelete)

	admin.HandleFunc("/specialties", r.specialtyHandler.CreateSpecialty).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/{id:[0-9]+}", r.specialtyHandler.UpdateSpecialty).Methods(http.MethodPut)
	admin.HandleFunc("/specialties/{id:[0-9]+}", r.specialtyHandler.DeleteSpecialty).Methods(http.MethodDelete)

	admin.HandleFunc("/users", r.authHandler.RegisterUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.authHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id:[0-9]+}", r.authHandler.DeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

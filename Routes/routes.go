package Routes

import (
	"github.com/wagnermocelin/DentalApp/Controllers"
	"github.com/wagnermocelin/DentalApp/Middleware"
	"github.com/wagnermocelin/DentalApp/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/register/Clinic", Controllers.RegisterClinic)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.SetClinic())
	{

		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.GET("/FetchUsers", Controllers.FetchUsers)
		authorized.POST("/FreezeUser", Middleware.PermissionCheckAdmin(), Controllers.FreezeUser)
		authorized.POST("/UpdateUserProfile", Controllers.UpdateUserProfile)
		authorized.POST("/ChangePassword", Controllers.ChangePassword)

		// Patient-related routes
		authorized.GET("/FetchPatients", Controllers.FetchPatients)
		authorized.POST("/CreatePatient", Controllers.CreatePatient)
		authorized.POST("/UpdatePatient", Controllers.UpdatePatient)
		authorized.POST("/DeletePatient", Controllers.DeletePatient)

		// Appointment-related routes
		authorized.POST("/FetchAppointments", Controllers.FetchAppointments)
		authorized.POST("/FetchAppointmentsByPatientID", Controllers.FetchAppointmentsByPatientID)
		authorized.POST("/CreateAppointment", Controllers.CreateAppointment)
		authorized.POST("/UpdateAppointment", Controllers.UpdateAppointment)
		authorized.POST("/UpdateAppointmentStatus", Controllers.UpdateAppointmentStatus)
		authorized.POST("/DeleteAppointment", Controllers.DeleteAppointment)

		// Budget-related routes
		authorized.GET("/FetchBudgets", Controllers.FetchBudgets)
		authorized.POST("/SaveBudget", Controllers.SaveBudget)
		authorized.POST("/DeleteBudget", Controllers.DeleteBudget)
		authorized.POST("/ApproveBudget", Controllers.ApproveBudget)
		authorized.POST("/RejectBudget", Controllers.RejectBudget)

		// Treatment-related routes
		authorized.GET("/FetchTreatments", Controllers.FetchTreatments)
		authorized.POST("/FetchTreatmentDetails", Controllers.FetchTreatmentDetails)
		authorized.POST("/UpdateProcedureStatus", Controllers.UpdateProcedureStatus)
		authorized.POST("/CompleteTreatment", Controllers.CompleteTreatment)
		authorized.POST("/PauseTreatment", Controllers.PauseTreatment)
		authorized.POST("/ReactivateTreatment", Controllers.ReactivateTreatment)
		authorized.POST("/CancelTreatment", Controllers.CancelTreatment)

		// Session-related routes
		authorized.POST("/FetchSessionPrerequisites", Controllers.FetchSessionPrerequisites)
		authorized.POST("/RecordSession", Controllers.RecordSession)
		authorized.POST("/FetchSessionsByTreatment", Controllers.FetchSessionsByTreatment)

		// Ledger-related routes
		authorized.POST("/FetchReceivables", Controllers.FetchReceivables)
		authorized.POST("/FetchPayables", Controllers.FetchPayables)
		authorized.POST("/SaveReceivable", Controllers.SaveReceivable)
		authorized.POST("/SavePayable", Controllers.SavePayable)
		authorized.POST("/MarkReceivablePaid", Controllers.MarkReceivablePaid)
		authorized.POST("/MarkPayablePaid", Controllers.MarkPayablePaid)
		authorized.POST("/DeleteReceivable", Controllers.DeleteReceivable)
		authorized.POST("/DeletePayable", Controllers.DeletePayable)
		authorized.GET("/FetchLedgerStats", Controllers.FetchLedgerStats)
		authorized.GET("/FetchFinancialCategories", Controllers.FetchFinancialCategories)
		authorized.POST("/SaveFinancialCategory", Controllers.SaveFinancialCategory)
		authorized.POST("/DeleteFinancialCategory", Controllers.DeleteFinancialCategory)

		// Clinical record routes
		authorized.POST("/FetchClinicalRecords", Controllers.FetchClinicalRecords)
		authorized.POST("/CreateClinicalRecord", Controllers.CreateClinicalRecord)
		authorized.POST("/DeleteClinicalRecord", Controllers.DeleteClinicalRecord)
		authorized.POST("/FetchPrescriptions", Controllers.FetchPrescriptions)
		authorized.POST("/CreatePrescription", Controllers.CreatePrescription)
		authorized.POST("/FetchLeaveCertificates", Controllers.FetchLeaveCertificates)
		authorized.POST("/CreateLeaveCertificate", Controllers.CreateLeaveCertificate)

		// Procedure catalog routes
		authorized.GET("/FetchStandardProcedures", Controllers.FetchStandardProcedures)
		authorized.POST("/AddStandardProcedure", Controllers.AddStandardProcedure)
		authorized.POST("/EditStandardProcedure", Controllers.EditStandardProcedure)
		authorized.POST("/DeleteStandardProcedure", Controllers.DeleteStandardProcedure)

		// Clinic settings routes
		authorized.GET("/FetchClinic", Controllers.FetchClinic)
		authorized.POST("/UpdateClinic", Middleware.PermissionCheckAdmin(), Controllers.UpdateClinic)
		authorized.GET("/FetchSettings", Controllers.FetchSettings)
		authorized.POST("/SaveSetting", Controllers.SaveSetting)

		// Dashboard route
		authorized.GET("/FetchDashboard", Controllers.FetchDashboard)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)

		// Export-related routes
		authorized.POST("/ExportReceivablesTable", Controllers.ExportReceivablesTable)
		authorized.POST("/ExportPayablesTable", Controllers.ExportPayablesTable)
	}

	// Static file serving
	router.Static("/Web", "./Static")
}

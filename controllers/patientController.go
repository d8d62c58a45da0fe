package controllers

import (
	"MedClinic/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPatientRoutes registers the doctor and patient resources.
func SetupPatientRoutes(router gin.IRouter, patientHandler *handlers.PatientHandler, doctorHandler *handlers.DoctorHandler) {
	doctors := router.Group("/doctors")
	doctors.POST("/", doctorHandler.CreateDoctor)
	doctors.POST("", doctorHandler.CreateDoctor)
	doctors.GET("/:id", doctorHandler.GetDoctorByID)
	doctors.PUT("/:id", doctorHandler.UpdateDoctor)
	doctors.DELETE("/:id", doctorHandler.DeleteDoctor)

	patients := router.Group("/patients")
	patients.POST("/", patientHandler.CreatePatient)
	patients.POST("", patientHandler.CreatePatient)
	patients.GET("/:id", patientHandler.GetPatientByID)
	patients.PUT("/:id", patientHandler.UpdatePatient)
	patients.DELETE("/:id", patientHandler.DeletePatient)
}

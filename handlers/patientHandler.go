package handlers

import (
	"MedClinic/middlewares"
	"MedClinic/models"
	"MedClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type PatientHandler struct {
	service *services.PatientService
	log     zerolog.Logger
}

func NewPatientHandler(service *services.PatientService, log zerolog.Logger) *PatientHandler {
	return &PatientHandler{service: service, log: log}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var input models.PatientInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	patient, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusOK)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusOK)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update models.PatientUpdate
	if err := bindUpdate(c, &update); err != nil {
		badRequest(c, err)
		return
	}
	patient, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusOK)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	middlewares.RespondJSON(c, models.MessageResponse{Message: "Patient deleted successfully"}, http.StatusOK)
}

package handlers

import (
	"MedClinic/middlewares"
	"MedClinic/models"
	"MedClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type DoctorHandler struct {
	service *services.DoctorService
	log     zerolog.Logger
}

func NewDoctorHandler(service *services.DoctorService, log zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{service: service, log: log}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input models.DoctorInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	doctor, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusOK)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doctor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if doctor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusOK)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update models.DoctorUpdate
	if err := bindUpdate(c, &update); err != nil {
		badRequest(c, err)
		return
	}
	doctor, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if doctor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusOK)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	middlewares.RespondJSON(c, models.MessageResponse{Message: "Doctor deleted successfully"}, http.StatusOK)
}

package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	cancel     *ucAppointment.CancelAppointment
	reschedule *ucAppointment.RescheduleAppointment
	complete   *ucAppointment.CompleteAppointment
	noShow     *ucAppointment.MarkNoShow
	get        *ucAppointment.GetAppointment
	list       *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	complete *ucAppointment.CompleteAppointment,
	noShow *ucAppointment.MarkNoShow,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		cancel:     cancel,
		reschedule: reschedule,
		complete:   complete,
		noShow:     noShow,
		get:        get,
		list:       list,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be a JSON object")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		PatientName:  req.PatientName,
		BranchID:     req.BranchID,
		DepartmentID: req.DepartmentID,
		DoctorID:     req.DoctorID,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

// List accepts optional doctor_id and date (YYYY-MM-DD) filters.
func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), ucAppointment.ListInput{
		DoctorID: c.Query("doctor_id"),
		Date:     c.Query("date"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, dto.FromAppointments(list))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be a JSON object")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), id, ucAppointment.RescheduleInput{
		Date: req.Date,
		Time: req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, h.noShow.Execute)
}

type transitionFunc func(ctx context.Context, id uint) (*models.Appointment, error)

func (h *AppointmentHandler) transition(c *gin.Context, run transitionFunc) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := run(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

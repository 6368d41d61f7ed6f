package handler

import (
	"net/http"
	"strconv"

	"schoolhub/internal/dto"
	"schoolhub/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SchoolHandler struct {
	Service  *service.SchoolService
	Validate *validator.Validate
}

func NewSchoolHandler(svc *service.SchoolService, validate *validator.Validate) *SchoolHandler {
	return &SchoolHandler{Service: svc, Validate: validate}
}

func (h *SchoolHandler) CreateClass(c echo.Context) error {
	var req dto.CreateClassRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	teacherID, err := uuid.Parse(req.ClassTeacherID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	input := service.ClassInput{
		Name:           req.Name,
		Grade:          req.Grade,
		Section:        req.Section,
		ClassTeacherID: teacherID,
	}
	class, err := h.Service.CreateClass(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "class created", dto.ClassResponseFromEntity(class))
}

func (h *SchoolHandler) ListClasses(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	classes, err := h.Service.ListClasses(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "classes", dto.ClassResponsesFromEntities(classes))
}

func (h *SchoolHandler) EnrollStudent(c echo.Context) error {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	var req dto.EnrollStudentRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	class, err := h.Service.EnrollStudent(c.Request().Context(), classID, studentID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "student enrolled", dto.ClassResponseFromEntity(class))
}

func (h *SchoolHandler) CreateSubject(c echo.Context) error {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	var req dto.CreateSubjectRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	input := service.SubjectInput{
		Name:        req.Name,
		Description: req.Description,
		ClassID:     classID,
		TeacherID:   teacherID,
	}
	subject, err := h.Service.CreateSubject(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "subject created", dto.SubjectResponseFromEntity(subject))
}

func (h *SchoolHandler) ListSubjects(c echo.Context) error {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	subjects, err := h.Service.ListSubjects(c.Request().Context(), classID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "subjects", dto.SubjectResponsesFromEntities(subjects))
}

func (h *SchoolHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}

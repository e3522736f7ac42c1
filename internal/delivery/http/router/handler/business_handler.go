package handler

import (
	"log/slog"
	"net/http"

	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/response"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business and roster handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetUserDetails returns the authenticated account's own record.
func (h *BusinessHandler) GetUserDetails(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User details retrieved")
}

// GetUserDetailsByID returns an employee record inside the admin's business.
func (h *BusinessHandler) GetUserDetailsByID(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing userId query parameter")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), adminID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User details retrieved")
}

// GetBusinessDetails returns the business owned by the authenticated admin.
func (h *BusinessHandler) GetBusinessDetails(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessView(business), "Business details retrieved")
}

type updateBusinessRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Pincode *string `json:"pincode"`
	Logo    *string `json:"logo"`
}

// UpdateBusiness partially updates the admin's own business.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), adminID, &usecase.UpdateBusinessInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Pincode: req.Pincode,
		Logo:    req.Logo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessView(business), "Business updated")
}

// ListEmployees returns the admin's employee roster.
func (h *BusinessHandler) ListEmployees(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	employees, err := h.uc.ListEmployees(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(employees), "Employees retrieved")
}

type addEmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Number   string `json:"number"`
	Address  string `json:"address"`
}

// AddEmployee creates an employee account inside the admin's business.
func (h *BusinessHandler) AddEmployee(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req addEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	employee, err := h.uc.AddEmployee(c.Request().Context(), adminID, &usecase.AddEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Number:   req.Number,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(employee), "Employee added")
}

type updateEmployeeRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Name       *string   `json:"name"`
	Number     *string   `json:"number"`
	Address    *string   `json:"address"`
}

// UpdateEmployee partially updates an employee in the admin's business.
func (h *BusinessHandler) UpdateEmployee(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	employee, err := h.uc.UpdateEmployee(c.Request().Context(), adminID, &usecase.UpdateEmployeeInput{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Number:     req.Number,
		Address:    req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(employee), "Employee updated")
}

type deleteEmployeesRequest struct {
	EmployeeIDs []uuid.UUID `json:"employee_ids" validate:"required,min=1"`
}

// DeleteEmployees removes a batch of employees from the admin's business.
func (h *BusinessHandler) DeleteEmployees(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req deleteEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	deleted, err := h.uc.DeleteEmployees(c.Request().Context(), adminID, req.EmployeeIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Employees deleted")
}

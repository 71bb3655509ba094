package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/dashboard"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data for the current filters
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetRecentActivities returns only the activity feed
	GetRecentActivities(w http.ResponseWriter, r *http.Request)
	// ListPersons returns per-person summaries
	ListPersons(w http.ResponseWriter, r *http.Request)
	// GetPersonDetails returns one person's history and statistics
	GetPersonDetails(w http.ResponseWriter, r *http.Request)
	// Refresh forces a refetch from the records API
	Refresh(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// parseCriteria reads the filter dimensions from the query string. A
// malformed value disables that dimension instead of failing the
// request; filtering degrades to "no filter", never to an error.
func parseCriteria(r *http.Request) record.FilterCriteria {
	query := r.URL.Query()

	criteria := record.FilterCriteria{
		Employee:   query.Get("employee"),
		Department: query.Get("department"),
		Status:     query.Get("status"),
	}

	if start, err := time.Parse("2006-01-02", query.Get("start_date")); err == nil {
		criteria.StartDate = &start
	}
	if end, err := time.Parse("2006-01-02", query.Get("end_date")); err == nil {
		criteria.EndDate = &end
	}
	return criteria
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), parseCriteria(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRecentActivities handles GET /dashboard/activities
func (h *dashboardHandlerImpl) GetRecentActivities(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), parseCriteria(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.RecentActivities)
}

// ListPersons handles GET /persons
func (h *dashboardHandlerImpl) ListPersons(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.ListPersons(r.Context(), parseCriteria(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPersonDetails handles GET /persons/{personID}
func (h *dashboardHandlerImpl) GetPersonDetails(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")

	result, err := h.dashboardService.GetPersonDetails(r.Context(), personID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh handles POST /dashboard/refresh
func (h *dashboardHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboardService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Records refreshed", nil)
}

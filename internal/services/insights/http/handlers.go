// Package http provides http transport for insights
package http

import (
	stdhttp "net/http"

	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	svc "devgate/internal/services/insights/service"
)

// Register mounts insights endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// weekly coding time plus language and project splits
	httpkit.Get(r, "/coding-time", h.codingTime)

	// skill acquisitions per month
	httpkit.Get(r, "/skills", h.skills)

	// project creations per month
	httpkit.Get(r, "/projects", h.projects)

	// status partition and completion timeline
	httpkit.Get(r, "/project-completion", h.projectCompletion)
}

type handlers struct{ svc svc.Service }

func userID(r *stdhttp.Request) (string, error) {
	id := r.URL.Query().Get("user_id")
	if id == "" {
		return "", perr.InvalidArgf("user_id query param is required")
	}
	return id, nil
}

// swagger:route GET /insights/coding-time Insights insightsCodingTime
// @Summary Weekly coding time with language and project splits
// @Tags Insights
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.CodingTime "ok"
// @Router /insights/coding-time [get]
func (h *handlers) codingTime(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CodingTime(r.Context(), id)
}

// swagger:route GET /insights/skills Insights insightsSkills
// @Summary Skill acquisitions per month
// @Tags Insights
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.SkillsByMonth "ok"
// @Router /insights/skills [get]
func (h *handlers) skills(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SkillsByMonth(r.Context(), id)
}

// swagger:route GET /insights/projects Insights insightsProjects
// @Summary Project creations per month
// @Tags Insights
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.CountSeries "ok"
// @Router /insights/projects [get]
func (h *handlers) projects(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ProjectsByMonth(r.Context(), id)
}

// swagger:route GET /insights/project-completion Insights insightsProjectCompletion
// @Summary Project status partition and completion timeline
// @Tags Insights
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.ProjectCompletion "ok"
// @Router /insights/project-completion [get]
func (h *handlers) projectCompletion(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ProjectCompletion(r.Context(), id)
}

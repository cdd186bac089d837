package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(group *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	portfolio := group.Group("/portfolio")
	portfolio.GET("/profile", handler.GetProfile)
	portfolio.GET("/projects", handler.ListProjects)
	portfolio.GET("/projects/:id", handler.GetProject)
	portfolio.GET("/skills", handler.ListSkills)
	portfolio.GET("/skills/grouped", handler.GroupSkills)
	portfolio.GET("/journey", handler.ListJourney)
}

// GetProfile godoc
// @Summary      Site owner profile
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Router       /portfolio/profile [get]
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	profile, err := h.portfolioUC.GetProfile(c.Request.Context())
	if err != nil {
		_ = c.Error(contentError(err))
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// ListProjects godoc
// @Summary      List projects
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "blockchain, fullstack, ml or security"
// @Param        featured  query     bool    false  "Only featured (true) or non-featured (false) projects"
// @Success      200       {object}  response.Response{data=[]domain.Project}
// @Failure      400       {object}  response.Response
// @Router       /portfolio/projects [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	filter := domain.ProjectFilter{Category: domain.ProjectCategory(c.Query("category"))}
	if raw, ok := c.GetQuery("featured"); ok {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			_ = c.Error(apperror.BadRequest("featured must be true or false"))
			return
		}
		filter.Featured = &featured
	}

	projects, err := h.portfolioUC.ListProjects(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(contentError(err))
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetProject godoc
// @Summary      Get one project
// @Tags         portfolio
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      404  {object}  response.Response
// @Router       /portfolio/projects/{id} [get]
func (h *PortfolioHandler) GetProject(c *gin.Context) {
	project, err := h.portfolioUC.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(contentError(err))
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// ListSkills godoc
// @Summary      List skills
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "frontend, backend, blockchain, ml or tools"
// @Success      200       {object}  response.Response{data=[]domain.Skill}
// @Failure      400       {object}  response.Response
// @Router       /portfolio/skills [get]
func (h *PortfolioHandler) ListSkills(c *gin.Context) {
	skills, err := h.portfolioUC.ListSkills(c.Request.Context(), domain.SkillCategory(c.Query("category")))
	if err != nil {
		_ = c.Error(contentError(err))
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// GroupSkills godoc
// @Summary      Skills grouped by category
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillGroup}
// @Router       /portfolio/skills/grouped [get]
func (h *PortfolioHandler) GroupSkills(c *gin.Context) {
	groups, err := h.portfolioUC.GroupSkills(c.Request.Context())
	if err != nil {
		_ = c.Error(contentError(err))
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", groups)
}

// ListJourney godoc
// @Summary      Education, work and certification timeline
// @Tags         portfolio
// @Produce      json
// @Param        type  query     string  false  "education, work or certification"
// @Success      200   {object}  response.Response{data=[]domain.Experience}
// @Failure      400   {object}  response.Response
// @Router       /portfolio/journey [get]
func (h *PortfolioHandler) ListJourney(c *gin.Context) {
	entries, err := h.portfolioUC.ListJourney(c.Request.Context(), domain.ExperienceType(c.Query("type")))
	if err != nil {
		_ = c.Error(contentError(err))
		return
	}
	response.Success(c, http.StatusOK, "Journey retrieved", entries)
}

func contentError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.New(http.StatusNotFound, "Not found", err)
	case errors.Is(err, domain.ErrInvalidFilter):
		return apperror.New(http.StatusBadRequest, err.Error(), err)
	default:
		return apperror.Internal(err)
	}
}

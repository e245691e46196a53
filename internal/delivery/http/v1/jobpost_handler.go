package v1

import (
	"net/http"
	"strconv"

	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobPostHandler struct {
	jobPostUC domain.JobPostUsecase
}

func NewJobPostHandler(public, protected, admin *gin.RouterGroup, jobPostUC domain.JobPostUsecase) {
	handler := &JobPostHandler{jobPostUC: jobPostUC}

	jobs := public.Group("/job-posts")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:slug", handler.GetBySlug)
	}

	protectedJobs := protected.Group("/job-posts")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:slug", handler.Update)
		protectedJobs.DELETE("/:slug", handler.Delete)
	}

	admin.PATCH("/job-posts/:slug/approve", handler.Approve)
}

// Create godoc
// @Summary      Create a job post
// @Description  Create a vacancy. Hirers and admins only; new posts start in
// @Description  pending review.
// @Tags         job-posts
// @Accept       json
// @Produce      json
// @Param        post  body      domain.CreateJobPostInput  true  "Job post JSON"
// @Success      201   {object}  response.Response{data=domain.JobPost}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /job-posts [post]
// @Security     BearerAuth
func (h *JobPostHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleHirer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only hirers or admins can create job posts"))
		return
	}

	var input domain.CreateJobPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	post, err := h.jobPostUC.Create(c, userID, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job post created", post)
}

// List godoc
// @Summary      List job posts
// @Tags         job-posts
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=domain.Page[domain.JobPost]}
// @Router       /job-posts [get]
func (h *JobPostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, err := h.jobPostUC.List(c, domain.PageOptions{Page: page, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posts", posts)
}

// GetBySlug godoc
// @Summary      Get a job post
// @Tags         job-posts
// @Produce      json
// @Param        slug  path      string  true  "Job post slug"
// @Success      200   {object}  response.Response{data=domain.JobPost}
// @Failure      404   {object}  response.Response
// @Router       /job-posts/{slug} [get]
func (h *JobPostHandler) GetBySlug(c *gin.Context) {
	post, err := h.jobPostUC.GetBySlug(c, c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post", post)
}

// Update godoc
// @Summary      Update a job post
// @Tags         job-posts
// @Accept       json
// @Produce      json
// @Param        slug  path      string                     true  "Job post slug"
// @Param        post  body      domain.UpdateJobPostInput  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.JobPost}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /job-posts/{slug} [put]
// @Security     BearerAuth
func (h *JobPostHandler) Update(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleHirer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only hirers or admins can update job posts"))
		return
	}

	var input domain.UpdateJobPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.jobPostUC.Update(c, c.Param("slug"), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post updated", post)
}

// Approve godoc
// @Summary      Approve a job post
// @Tags         admin
// @Produce      json
// @Param        slug  path      string  true  "Job post slug"
// @Success      200   {object}  response.Response{data=domain.JobPost}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/job-posts/{slug}/approve [patch]
// @Security     BearerAuth
func (h *JobPostHandler) Approve(c *gin.Context) {
	post, err := h.jobPostUC.Approve(c, c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post approved", post)
}

// Delete godoc
// @Summary      Delete a job post
// @Tags         job-posts
// @Produce      json
// @Param        slug  path      string  true  "Job post slug"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /job-posts/{slug} [delete]
// @Security     BearerAuth
func (h *JobPostHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleHirer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only hirers or admins can delete job posts"))
		return
	}

	if err := h.jobPostUC.Delete(c, c.Param("slug")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post deleted", nil)
}

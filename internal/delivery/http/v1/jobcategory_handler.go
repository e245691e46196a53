package v1

import (
	"net/http"

	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
	"skilledup-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

// maxCategoryImageBytes caps reference-data image uploads.
const maxCategoryImageBytes = 5 << 20

type JobCategoryHandler struct {
	categoryUC domain.JobCategoryUsecase
}

func NewJobCategoryHandler(public, admin *gin.RouterGroup, categoryUC domain.JobCategoryUsecase) {
	handler := &JobCategoryHandler{categoryUC: categoryUC}

	categories := public.Group("/job-categories")
	{
		categories.GET("", handler.List)
		categories.GET("/:id", handler.GetByID)
	}

	adminCategories := admin.Group("/job-categories")
	{
		adminCategories.POST("", handler.Create)
		adminCategories.PUT("/:id", handler.Update)
		adminCategories.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a job category
// @Description  Create reference data for applicant skills. Accepts an
// @Description  optional image that is resized before storage.
// @Tags         job-categories
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Category name"
// @Param        description  formData  string  false  "Category description"
// @Param        image        formData  file    false  "Category image"
// @Success      201  {object}  response.Response{data=domain.JobCategory}
// @Failure      400  {object}  response.Response
// @Router       /admin/job-categories [post]
// @Security     BearerAuth
func (h *JobCategoryHandler) Create(c *gin.Context) {
	input := domain.CreateJobCategoryInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	var image []byte
	if _, err := c.FormFile("image"); err == nil {
		filename, data, err := readFormFile(c, "image", maxCategoryImageBytes)
		if err != nil {
			c.Error(err)
			return
		}
		if result := upload.ValidateImage(filename, data); !result.Valid {
			c.Error(apperror.BadRequest(result.Error))
			return
		}
		image = data
	}

	category, err := h.categoryUC.Create(c, input, image)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job category created", category)
}

// List godoc
// @Summary      List job categories
// @Tags         job-categories
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobCategory}
// @Router       /job-categories [get]
func (h *JobCategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.GetAll(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job categories", categories)
}

// GetByID godoc
// @Summary      Get a job category
// @Tags         job-categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response{data=domain.JobCategory}
// @Failure      404  {object}  response.Response
// @Router       /job-categories/{id} [get]
func (h *JobCategoryHandler) GetByID(c *gin.Context) {
	category, err := h.categoryUC.GetByID(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job category", category)
}

// Update godoc
// @Summary      Update a job category
// @Tags         job-categories
// @Accept       json
// @Produce      json
// @Param        id        path      string                         true  "Category ID"
// @Param        category  body      domain.UpdateJobCategoryInput  true  "Fields to update"
// @Success      200       {object}  response.Response{data=domain.JobCategory}
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /admin/job-categories/{id} [put]
// @Security     BearerAuth
func (h *JobCategoryHandler) Update(c *gin.Context) {
	var input domain.UpdateJobCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	category, err := h.categoryUC.Update(c, c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job category updated", category)
}

// Delete godoc
// @Summary      Delete a job category
// @Tags         job-categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/job-categories/{id} [delete]
// @Security     BearerAuth
func (h *JobCategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryUC.Delete(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job category deleted", nil)
}

package v1

import (
	"io"
	"mime/multipart"
	"net/http"

	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
	"skilledup-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type ApplicantHandler struct {
	applicantUC  domain.ApplicantUsecase
	maxResumeLen int64
	maxVideoLen  int64
}

func NewApplicantHandler(public, protected, admin *gin.RouterGroup, applicantUC domain.ApplicantUsecase, uploads []gin.HandlerFunc, maxResumeLen, maxVideoLen int64) {
	handler := &ApplicantHandler{
		applicantUC:  applicantUC,
		maxResumeLen: maxResumeLen,
		maxVideoLen:  maxVideoLen,
	}

	// Public profile pages are addressed by slug.
	public.GET("/applicants/:slug", handler.GetBySlug)

	applicants := protected.Group("/applicants")
	{
		applicants.POST("", handler.Provision)
		applicants.GET("/me", handler.GetProfile)
		applicants.PUT("/me", handler.UpdateProfile)
		applicants.DELETE("/me/video-resume/:videoId", handler.DeleteVideoResume)

		media := applicants.Group("", uploads...)
		{
			media.POST("/me/resume", handler.UploadResume)
			media.POST("/me/video-resume", handler.UploadVideoResume)
		}
	}

	adminApplicants := admin.Group("/applicants")
	{
		adminApplicants.PATCH("/:id/approve", handler.Approve)
		adminApplicants.PATCH("/:id/reject", handler.Reject)
		adminApplicants.DELETE("/:id", handler.Delete)
	}
}

// readFormFile reads one multipart file into memory with a hard size cap.
func readFormFile(c *gin.Context, field string, maxSize int64) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, apperror.BadRequest("No file uploaded")
	}
	if fileHeader.Size > maxSize {
		return "", nil, apperror.BadRequest("File exceeds the maximum allowed size")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, apperror.BadRequest("Could not read uploaded file")
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return "", nil, apperror.BadRequest("Could not read uploaded file")
	}
	if int64(len(data)) > maxSize {
		return "", nil, apperror.BadRequest("File exceeds the maximum allowed size")
	}

	return fileHeader.Filename, data, nil
}

// Provision godoc
// @Summary      Create applicant profile
// @Description  Create the empty profile for the logged-in applicant account
// @Tags         applicants
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.ApplicantView}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applicants [post]
// @Security     BearerAuth
func (h *ApplicantHandler) Provision(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.applicantUC.Provision(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Applicant profile created", profile)
}

// GetProfile godoc
// @Summary      Get own applicant profile
// @Description  Get the profile of the currently logged-in applicant
// @Tags         applicants
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ApplicantView}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applicants/me [get]
// @Security     BearerAuth
func (h *ApplicantHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.applicantUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant profile", profile)
}

// GetBySlug godoc
// @Summary      Get applicant profile by slug
// @Tags         applicants
// @Produce      json
// @Param        slug  path      string  true  "Profile slug"
// @Success      200   {object}  response.Response{data=domain.ApplicantView}
// @Failure      404   {object}  response.Response
// @Router       /applicants/{slug} [get]
func (h *ApplicantHandler) GetBySlug(c *gin.Context) {
	profile, err := h.applicantUC.GetBySlug(c, c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant profile", profile)
}

// UpdateProfile godoc
// @Summary      Update own applicant profile
// @Description  Partial update; omitted fields are left untouched. A rejected
// @Description  profile returns to pending review after an update.
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.UpdateApplicantInput  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.ApplicantView}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /applicants/me [put]
// @Security     BearerAuth
func (h *ApplicantHandler) UpdateProfile(c *gin.Context) {
	var input domain.UpdateApplicantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.applicantUC.UpdateProfile(c, userID, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant profile updated", profile)
}

// UploadResume godoc
// @Summary      Upload resume
// @Description  Upload a PDF resume. Replaces the previous resume and resets
// @Description  its review status to pending.
// @Tags         applicants
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF resume"
// @Success      200   {object}  response.Response{data=domain.ApplicantView}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applicants/me/resume [post]
// @Security     BearerAuth
func (h *ApplicantHandler) UploadResume(c *gin.Context) {
	filename, data, err := readFormFile(c, "file", h.maxResumeLen)
	if err != nil {
		c.Error(err)
		return
	}

	if result := upload.ValidateResume(filename, data); !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.applicantUC.UploadResume(c, userID, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", profile)
}

// UploadVideoResume godoc
// @Summary      Upload video resume
// @Description  Attach a video resume. At most three videos per applicant.
// @Tags         applicants
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Video file"
// @Success      200   {object}  response.Response{data=domain.ApplicantView}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applicants/me/video-resume [post]
// @Security     BearerAuth
func (h *ApplicantHandler) UploadVideoResume(c *gin.Context) {
	filename, data, err := readFormFile(c, "file", h.maxVideoLen)
	if err != nil {
		c.Error(err)
		return
	}

	if result := upload.ValidateVideo(filename, data); !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.applicantUC.UploadVideoResume(c, userID, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video resume uploaded", profile)
}

// DeleteVideoResume godoc
// @Summary      Delete a video resume
// @Tags         applicants
// @Produce      json
// @Param        videoId  path      string  true  "Video resume ID"
// @Success      200      {object}  response.Response{data=domain.ApplicantView}
// @Failure      404      {object}  response.Response
// @Router       /applicants/me/video-resume/{videoId} [delete]
// @Security     BearerAuth
func (h *ApplicantHandler) DeleteVideoResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.applicantUC.DeleteVideoResume(c, userID, c.Param("videoId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video resume deleted", profile)
}

// Approve godoc
// @Summary      Approve an applicant profile
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Applicant ID"
// @Success      200 {object}  response.Response{data=domain.ApplicantView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /admin/applicants/{id}/approve [patch]
// @Security     BearerAuth
func (h *ApplicantHandler) Approve(c *gin.Context) {
	profile, err := h.applicantUC.Approve(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant approved", profile)
}

// Reject godoc
// @Summary      Reject an applicant profile
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Applicant ID"
// @Success      200 {object}  response.Response{data=domain.ApplicantView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /admin/applicants/{id}/reject [patch]
// @Security     BearerAuth
func (h *ApplicantHandler) Reject(c *gin.Context) {
	profile, err := h.applicantUC.Reject(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant rejected", profile)
}

// Delete godoc
// @Summary      Delete an applicant profile
// @Description  Remove the profile and its stored media
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Applicant ID"
// @Success      200 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /admin/applicants/{id} [delete]
// @Security     BearerAuth
func (h *ApplicantHandler) Delete(c *gin.Context) {
	if err := h.applicantUC.DeleteApplicant(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant deleted", nil)
}

package v1

import (
	"net/http"
	"strconv"

	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"
	"skilledup-backend/pkg/apperror"
	"skilledup-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

const maxBannerImageBytes = 10 << 20

type BannerHandler struct {
	bannerUC domain.BannerConfigUsecase
}

func NewBannerHandler(public, admin *gin.RouterGroup, bannerUC domain.BannerConfigUsecase) {
	handler := &BannerHandler{bannerUC: bannerUC}

	public.GET("/banners", handler.List)

	adminBanners := admin.Group("/banners")
	{
		adminBanners.POST("", handler.Create)
		adminBanners.PATCH("/:id/active", handler.SetActive)
		adminBanners.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a banner
// @Description  Upload a landing-page banner. The image is resized before
// @Description  storage.
// @Tags         banners
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true   "Banner name"
// @Param        isActive  formData  bool    false  "Whether the banner is live"
// @Param        image     formData  file    true   "Banner image"
// @Success      201  {object}  response.Response{data=domain.BannerConfig}
// @Failure      400  {object}  response.Response
// @Router       /admin/banners [post]
// @Security     BearerAuth
func (h *BannerHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	isActive, _ := strconv.ParseBool(c.DefaultPostForm("isActive", "false"))

	filename, data, err := readFormFile(c, "image", maxBannerImageBytes)
	if err != nil {
		c.Error(err)
		return
	}
	if result := upload.ValidateImage(filename, data); !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	banner, err := h.bannerUC.Create(c, name, isActive, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Banner created", banner)
}

// List godoc
// @Summary      List banners
// @Tags         banners
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=domain.Page[domain.BannerConfig]}
// @Router       /banners [get]
func (h *BannerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	banners, err := h.bannerUC.List(c, domain.PageOptions{Page: page, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Banners", banners)
}

// SetActive godoc
// @Summary      Toggle banner visibility
// @Tags         banners
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Banner ID"
// @Success      200  {object}  response.Response{data=domain.BannerConfig}
// @Failure      404  {object}  response.Response
// @Router       /admin/banners/{id}/active [patch]
// @Security     BearerAuth
func (h *BannerHandler) SetActive(c *gin.Context) {
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	banner, err := h.bannerUC.SetActive(c, c.Param("id"), req.IsActive)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Banner updated", banner)
}

// Delete godoc
// @Summary      Delete a banner
// @Tags         banners
// @Produce      json
// @Param        id   path      string  true  "Banner ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/banners/{id} [delete]
// @Security     BearerAuth
func (h *BannerHandler) Delete(c *gin.Context) {
	if err := h.bannerUC.Delete(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Banner deleted", nil)
}

package v1

import (
	"net/http"
	"strconv"

	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(public *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	public.GET("/search/applicants", handler.Search)
}

// Search godoc
// @Summary      Search applicant profiles
// @Description  Faceted search over applicant profiles. Filters are applied
// @Description  by precedence: userId alone, keyword with jobCategory,
// @Description  keyword alone, jobCategory alone, then no filter.
// @Tags         search
// @Produce      json
// @Param        userId       query     string  false  "Owning user ID"
// @Param        keyword      query     string  false  "Name or category keyword"
// @Param        jobCategory  query     string  false  "Job category ID"
// @Param        page         query     int     false  "Page number"
// @Param        limit        query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=domain.SearchPage}
// @Router       /search/applicants [get]
func (h *SearchHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.SearchFilter{
		UserID:      c.Query("userId"),
		JobCategory: c.Query("jobCategory"),
		Keyword:     c.Query("keyword"),
	}

	result, err := h.searchUC.Search(c, filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant search results", result)
}

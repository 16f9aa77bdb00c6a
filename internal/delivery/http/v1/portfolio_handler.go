package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
	}

	public.GET("/portfolio", handler.GetPortfolio)
	public.GET("/portfolio/skills", handler.GetSkills)
}

// GetPortfolio godoc
// @Summary      Get Portfolio
// @Description  Every page section with images inlined as data URIs.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Portfolio}
// @Router       /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.portfolioUC.GetPortfolio(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Portfolio retrieved", portfolio)
}

// GetSkills godoc
// @Summary      Get Skills
// @Description  Radar chart data and spoken languages.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SkillsSection}
// @Router       /portfolio/skills [get]
func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	skills, err := h.portfolioUC.GetSkills(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

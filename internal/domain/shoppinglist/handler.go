package shoppinglist

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	aggregator *Aggregator
}

func NewHandler(aggregator *Aggregator) *Handler {
	return &Handler{aggregator: aggregator}
}

// Download godoc
// @Summary Download shopping list
// @Description Sums the ingredients of every recipe in the caller's cart.
// @Tags Recipes
// @Security BearerAuth
// @Produce plain
// @Produce application/pdf
// @Param format query string false "txt (default) or pdf"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/download_shopping_cart [get]
// @Router /recipes/download_shopping_list [get]
func (h *Handler) Download(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}

	format := c.DefaultQuery("format", "txt")
	if format != "txt" && format != "pdf" {
		response.FromError(c, ErrUnknownFormat)
		return
	}

	report, err := h.aggregator.Build(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if format == "pdf" {
		var buf bytes.Buffer
		if err := report.PDF(&buf); err != nil {
			logging.Ctx(c.Request.Context()).Error().Err(err).Msg("render shopping list pdf")
			response.Error(c, http.StatusInternalServerError, "PDF_FAILED", "Failed to generate PDF")
			return
		}
		metrics.RecordShoppingListDownload(format)
		c.Header("Content-Disposition", "attachment; filename=shopping_list.pdf")
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
		return
	}

	metrics.RecordShoppingListDownload(format)
	c.Header("Content-Disposition", "attachment; filename=shopping_list.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Text()))
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasklight.app/tasklight/internal/services"
)

type QuoteHandler struct {
	quoteService *services.QuoteService
}

func NewQuoteHandler(quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Daily also serves the /daily/:refresh variant. The refresh
// discriminator is accepted for the client's benefit but does not
// bypass the day cache; the quote only changes on a date boundary.
func (h *QuoteHandler) Daily(c echo.Context) error {
	return c.JSON(http.StatusOK, h.quoteService.Daily())
}

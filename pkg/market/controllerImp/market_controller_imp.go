package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/market"
)

type MarketCtrl struct {
	board *market.Board
	url   string // scrape source, empty disables refresh
}

func New(board *market.Board, url string) *MarketCtrl { return &MarketCtrl{board: board, url: url} }

func (h *MarketCtrl) Prices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.board.Prices())
}

func (h *MarketCtrl) Refresh(c echo.Context) error {
	if h.url == "" {
		return c.JSON(http.StatusNotImplemented, map[string]string{"error": "no market source configured"})
	}
	if err := h.board.FetchURL(h.url); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.board.Prices())
}

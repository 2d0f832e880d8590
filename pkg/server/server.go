// Package server is the thin HTTP boundary over the extraction pipeline:
// it validates the query, runs the search, and maps each outcome to a
// status and JSON body without leaking internal detail.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"CourseScout/pkg/calendar"
	"CourseScout/pkg/catalog"
	"CourseScout/pkg/log"
)

// Searcher runs one course query end to end.
type Searcher interface {
	SearchCourse(ctx context.Context, query string) (catalog.Result, error)
}

type Server struct {
	searcher Searcher
}

func New(searcher Searcher) *Server {
	return &Server{searcher: searcher}
}

func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		message := "internal error"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if httpErr.Message != nil {
				message = fmt.Sprint(httpErr.Message)
			}
		}
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]string{"error": message})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/api/course", s.getCourse)
	e.GET("/api/course/calendar", s.getCourseCalendar)
	return e
}

func (s *Server) Run(address string) error {
	log.L().Info("server_start", zap.String("addr", address))
	return s.Router().Start(address)
}

func (s *Server) getCourse(c echo.Context) error {
	result, err := s.search(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) getCourseCalendar(c echo.Context) error {
	result, err := s.search(c)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/calendar", []byte(calendar.BuildCalendar(result)))
}

func (s *Server) search(c echo.Context) (catalog.Result, error) {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return catalog.Result{}, echo.NewHTTPError(http.StatusBadRequest, "keyword is required")
	}
	result, err := s.searcher.SearchCourse(c.Request().Context(), keyword)
	if err != nil {
		return catalog.Result{}, outcomeError(keyword, err)
	}
	return result, nil
}

// outcomeError translates pipeline failures into HTTP responses. Only the
// not-found reasons surface verbatim; render failures and unexpected
// faults stay generic.
func outcomeError(keyword string, err error) error {
	var renderErr *catalog.RenderError
	switch {
	case errors.Is(err, catalog.ErrNoResults), errors.Is(err, catalog.ErrNoExactMatch):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &renderErr):
		log.L().Warn("render_failed",
			zap.String("keyword", keyword),
			zap.String("stage", renderErr.Stage),
			zap.Error(renderErr.Err))
		return echo.NewHTTPError(http.StatusBadGateway, "catalog page failed to render")
	default:
		log.L().Error("search_failed", zap.String("keyword", keyword), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

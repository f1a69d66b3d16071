package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
	md "github.com/Astemirdum/library-records/pkg/middleware"
	_ "github.com/Astemirdum/library-records/swagger"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = NewValidator()
	api := e.Group("/api/v1",
		md.NewRequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)
	h.register(api)

	return e
}

func (h *Handler) register(api *echo.Group) {
	api.POST("/members", h.CreateMember)
	api.GET("/members", h.ListMembers)
	api.GET("/members/:id", h.GetMember)
	api.PUT("/members/:id", h.UpdateMember)
	api.PATCH("/members/:id", h.UpdateMember)
	api.DELETE("/members/:id", h.DeleteMember)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.PATCH("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.POST("/staff", h.CreateStaff)
	api.GET("/staff", h.ListStaff)
	api.GET("/staff/:id", h.GetStaff)
	api.PUT("/staff/:id", h.UpdateStaff)
	api.PATCH("/staff/:id", h.UpdateStaff)

	api.POST("/borrowing-records", h.CreateBorrowingRecord)
	api.GET("/borrowing-records", h.ListBorrowingRecords)
	api.GET("/borrowing-records/:id", h.GetBorrowingRecord)
	api.PUT("/borrowing-records/:id", h.UpdateBorrowingRecord)
	api.PATCH("/borrowing-records/:id", h.UpdateBorrowingRecord)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.ListReservations)
	api.GET("/reservations/:id", h.GetReservation)
	api.PUT("/reservations/:id", h.UpdateReservation)
	api.PATCH("/reservations/:id", h.UpdateReservation)
}

// Health godoc
//
// @Summary	Database health check
// @Tags		manage
// @Produce	plain
// @Success	200	{string} string
// @Failure	503	{string} string
// @Router		/manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	if err := h.librarySvc.Ping(c.Request().Context()); err != nil {
		h.log.Warn("health", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
	}
	return c.String(http.StatusOK, "OK")
}

// fail renders err; anything that is not a domain error is logged and hidden.
func (h *Handler) fail(c echo.Context, err error) error {
	e, ok := errs.As(err)
	if !ok {
		h.log.Error("internal", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "internal server error"})
	}
	msg := e.Message
	if e.Kind == errs.KindValidation && e.Err != nil {
		msg = e.Err.Error()
	}
	return c.JSON(statusOf(e.Kind), model.ErrorResponse{
		Kind:    string(e.Kind),
		Reason:  string(e.Reason),
		Message: msg,
	})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errs.Validation(errors.Errorf("id %q is invalid", c.Param("id")))
	}
	return id, nil
}

// bindBody decodes the JSON body only, so patches never pick up path or query values.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return errs.Validation(errors.Errorf("%v", he.Message))
		}
		return errs.Validation(err)
	}
	if err := c.Validate(dst); err != nil {
		return errs.Validation(err)
	}
	return nil
}

func bindList(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return errs.Validation(errors.New("skip and limit must be non-negative integers"))
	}
	if err := c.Validate(dst); err != nil {
		return errs.Validation(err)
	}
	return nil
}

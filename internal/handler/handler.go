package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/internal/errs"
	"github.com/dsalazr/biblioteca-service/internal/model"
	md "github.com/dsalazr/biblioteca-service/pkg/middleware"
	"github.com/dsalazr/biblioteca-service/pkg/validate"
)

// EntityStore is the administrative CRUD surface over one entity table,
// satisfied by repository.Store.
type EntityStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Add(e *T)
	Update(e *T)
	Remove(id int)
	Commit(ctx context.Context) (int64, error)
}

type Handler struct {
	svc        BibliotecaService
	categories EntityStore[model.Category]
	books      EntityStore[model.Book]
	members    EntityStore[model.Member]
	loans      EntityStore[model.Loan]
	log        *zap.Logger
}

func New(
	svc BibliotecaService,
	categories EntityStore[model.Category],
	books EntityStore[model.Book],
	members EntityStore[model.Member],
	loans EntityStore[model.Loan],
	log *zap.Logger,
) *Handler {
	return &Handler{
		svc:        svc,
		categories: categories,
		books:      books,
		members:    members,
		loans:      loans,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)
	api.PUT("/categories/:id", h.UpdateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)

	api.GET("/members", h.ListMembers)
	api.POST("/members", h.CreateMember)
	api.PUT("/members/:id", h.UpdateMember)
	api.DELETE("/members/:id", h.DeleteMember)

	api.GET("/loans", h.ListLoans)
	api.GET("/loans/:id", h.GetLoan)
	api.POST("/loans", h.IssueLoan)
	api.POST("/loans/:id/return", h.ReturnLoan)
	api.GET("/loans/active", h.ActiveLoans)

	api.GET("/stats", h.GetStatistics)
	api.GET("/stats/top-borrowed", h.GetTopBorrowedBooks)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) IssueLoan(c echo.Context) error {
	var req model.IssueLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	loan, err := h.svc.IssueLoan(c.Request().Context(), req.BookID, req.MemberID, req.LoanDays)
	if err != nil {
		return loanError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	loan, err := h.svc.ReturnLoan(c.Request().Context(), id)
	if err != nil {
		return loanError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func loanError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrBookUnavailable),
		errors.Is(err, errs.ErrMemberInactive),
		errors.Is(err, errs.ErrLoanAlreadyReturned):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		books []model.BookWithCategory
		err   error
	)
	switch {
	case c.QueryParam("author") != "":
		books, err = h.svc.SearchByAuthor(ctx, c.QueryParam("author"))
	case c.QueryParam("category") != "":
		books, err = h.svc.SearchByCategory(ctx, c.QueryParam("category"))
	default:
		books, err = h.svc.ListBooks(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ActiveLoans(c echo.Context) error {
	loans, err := h.svc.ActiveLoans(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetStatistics(c echo.Context) error {
	stats, err := h.svc.GetStatistics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetTopBorrowedBooks(c echo.Context) error {
	limit := 5
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		var err error
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("limit is invalid"))
		}
	}
	top, err := h.svc.GetTopBorrowedBooks(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, top)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	return id, nil
}

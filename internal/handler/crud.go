package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dsalazr/biblioteca-service/internal/errs"
	"github.com/dsalazr/biblioteca-service/internal/model"
)

// Administrative CRUD over the entity tables, served straight through the
// generic store gateway. Echo handlers cannot be generic methods, so the
// shared shapes live in free functions.

func listEntities[T any](c echo.Context, store EntityStore[T]) error {
	items, err := store.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func getEntity[T any](c echo.Context, store EntityStore[T]) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

func createEntity[T any](c echo.Context, store EntityStore[T]) error {
	var e T
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(e); err != nil {
		return err
	}
	store.Add(&e)
	if _, err := store.Commit(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, e)
}

func updateEntity[T any](c echo.Context, store EntityStore[T], setID func(*T, int)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if _, err := store.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var e T
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(e); err != nil {
		return err
	}
	setID(&e, id)
	store.Update(&e)
	if _, err := store.Commit(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, e)
}

func deleteEntity[T any](c echo.Context, store EntityStore[T]) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	store.Remove(id)
	if _, err := store.Commit(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBook(c echo.Context) error { return getEntity(c, h.books) }

func (h *Handler) CreateBook(c echo.Context) error { return createEntity(c, h.books) }

func (h *Handler) UpdateBook(c echo.Context) error {
	return updateEntity(c, h.books, func(b *model.Book, id int) { b.ID = id })
}

func (h *Handler) DeleteBook(c echo.Context) error { return deleteEntity(c, h.books) }

func (h *Handler) ListCategories(c echo.Context) error { return listEntities(c, h.categories) }

func (h *Handler) CreateCategory(c echo.Context) error { return createEntity(c, h.categories) }

func (h *Handler) UpdateCategory(c echo.Context) error {
	return updateEntity(c, h.categories, func(cat *model.Category, id int) { cat.ID = id })
}

func (h *Handler) DeleteCategory(c echo.Context) error { return deleteEntity(c, h.categories) }

func (h *Handler) ListMembers(c echo.Context) error { return listEntities(c, h.members) }

func (h *Handler) CreateMember(c echo.Context) error { return createEntity(c, h.members) }

func (h *Handler) UpdateMember(c echo.Context) error {
	return updateEntity(c, h.members, func(m *model.Member, id int) { m.ID = id })
}

func (h *Handler) DeleteMember(c echo.Context) error { return deleteEntity(c, h.members) }

func (h *Handler) ListLoans(c echo.Context) error { return listEntities(c, h.loans) }

func (h *Handler) GetLoan(c echo.Context) error { return getEntity(c, h.loans) }

package crud

import (
	"context"
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
)

// Store adalah operasi CRUD yang dibutuhkan Resource. *Service
// memenuhinya; test bisa pakai fake.
type Store[E any, C Input] interface {
	Create(ctx context.Context, in C) (E, error)
	ListAll(ctx context.Context) ([]E, error)
	ListPublic(ctx context.Context) ([]E, error)
	GetByKey(ctx context.Context, key string) (E, error)
	Update(ctx context.Context, id int, in C) (E, error)
	Delete(ctx context.Context, id int) error
}

// Resource membungkus Store jadi handler Fiber. Semua response memakai
// envelope single-key: {"post": {...}} untuk record tunggal,
// {"posts": [...]} untuk list. Delete membalas 204 tanpa body.
type Resource[E any, C Input] struct {
	store    Store[E, C]
	singular string
	plural   string
}

func NewResource[E any, C Input](store Store[E, C], singular, plural string) *Resource[E, C] {
	return &Resource[E, C]{store: store, singular: singular, plural: plural}
}

func (r *Resource[E, C]) Create(c *fiber.Ctx) error {
	var req C
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, err := r.store.Create(c.Context(), req)
	if err != nil {
		return r.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{r.singular: rec})
}

// List adalah listing publik. Untuk entity tanpa visibility gate
// hasilnya identik dengan ListAll.
func (r *Resource[E, C]) List(c *fiber.Ctx) error {
	recs, err := r.store.ListPublic(c.Context())
	if err != nil {
		return r.respondError(c, err)
	}
	return c.JSON(fiber.Map{r.plural: recs})
}

// ListAll adalah listing admin, termasuk row yang belum published.
func (r *Resource[E, C]) ListAll(c *fiber.Ctx) error {
	recs, err := r.store.ListAll(c.Context())
	if err != nil {
		return r.respondError(c, err)
	}
	return c.JSON(fiber.Map{r.plural: recs})
}

// Get mengembalikan handler lookup by key; param nama path parameter
// (blog: "slug").
func (r *Resource[E, C]) Get(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := r.store.GetByKey(c.Context(), c.Params(param))
		if err != nil {
			return r.respondError(c, err)
		}
		return c.JSON(fiber.Map{r.singular: rec})
	}
}

func (r *Resource[E, C]) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id format",
		})
	}

	var req C
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, err := r.store.Update(c.Context(), id, req)
	if err != nil {
		return r.respondError(c, err)
	}
	return c.JSON(fiber.Map{r.singular: rec})
}

func (r *Resource[E, C]) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id format",
		})
	}

	if err := r.store.Delete(c.Context(), id); err != nil {
		return r.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (r *Resource[E, C]) respondError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verrs,
		})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": r.singular + " not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process " + r.singular + ": " + err.Error(),
		})
	}
}

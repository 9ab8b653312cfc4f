package crud_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionguard-backend/internal/crud"
	"visionguard-backend/internal/models"
)

// fakeStore memenuhi crud.Store tanpa database.
type fakeStore struct {
	createFn func(models.FAQCreateRequest) (models.FAQ, error)
	listFn   func() ([]models.FAQ, error)
	getFn    func(string) (models.FAQ, error)
	updateFn func(int, models.FAQCreateRequest) (models.FAQ, error)
	deleteFn func(int) error

	deletedID int
}

func (f *fakeStore) Create(_ context.Context, in models.FAQCreateRequest) (models.FAQ, error) {
	return f.createFn(in)
}

func (f *fakeStore) ListAll(context.Context) ([]models.FAQ, error)    { return f.listFn() }
func (f *fakeStore) ListPublic(context.Context) ([]models.FAQ, error) { return f.listFn() }

func (f *fakeStore) GetByKey(_ context.Context, key string) (models.FAQ, error) {
	return f.getFn(key)
}

func (f *fakeStore) Update(_ context.Context, id int, in models.FAQCreateRequest) (models.FAQ, error) {
	return f.updateFn(id, in)
}

func (f *fakeStore) Delete(_ context.Context, id int) error {
	f.deletedID = id
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func newApp(store *fakeStore) *fiber.App {
	res := crud.NewResource[models.FAQ, models.FAQCreateRequest](store, "faq", "faqs")
	app := fiber.New()
	app.Post("/faqs", res.Create)
	app.Get("/faqs", res.List)
	app.Get("/faqs/:slug", res.Get("slug"))
	app.Put("/admin/faqs/:id", res.Update)
	app.Delete("/admin/faqs/:id", res.Delete)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestResourceCreate(t *testing.T) {
	t.Run("sukses membalas 201 dengan envelope singular", func(t *testing.T) {
		store := &fakeStore{
			createFn: func(in models.FAQCreateRequest) (models.FAQ, error) {
				return models.FAQ{ID: 7, Question: in.Question, Answer: in.Answer}, nil
			},
		}
		app := newApp(store)

		req := httptest.NewRequest("POST", "/faqs",
			strings.NewReader(`{"question":"Berapa lama instalasi?","answer":"1-2 hari","orderIndex":0}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		require.Contains(t, body, "faq")
		var faq models.FAQ
		require.NoError(t, json.Unmarshal(body["faq"], &faq))
		assert.Equal(t, 7, faq.ID)
		assert.Equal(t, "Berapa lama instalasi?", faq.Question)
	})

	t.Run("body bukan JSON membalas 400", func(t *testing.T) {
		app := newApp(&fakeStore{})

		req := httptest.NewRequest("POST", "/faqs", strings.NewReader("bukan json"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation error membalas 400 dengan details", func(t *testing.T) {
		store := &fakeStore{
			createFn: func(models.FAQCreateRequest) (models.FAQ, error) {
				return models.FAQ{}, validation.Errors{
					"question": validation.NewError("cms.faq.question_required", "question is required"),
				}
			},
		}
		app := newApp(store)

		req := httptest.NewRequest("POST", "/faqs", strings.NewReader(`{"answer":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.JSONEq(t, `"Validation failed"`, string(body["error"]))
		assert.Contains(t, body, "details")
	})
}

func TestResourceList(t *testing.T) {
	t.Run("list kosong tetap slice, bukan null", func(t *testing.T) {
		store := &fakeStore{listFn: func() ([]models.FAQ, error) { return []models.FAQ{}, nil }}
		app := newApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/faqs", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"faqs":[]}`, string(raw))
	})

	t.Run("error service membalas 500", func(t *testing.T) {
		store := &fakeStore{listFn: func() ([]models.FAQ, error) { return nil, assert.AnError }}
		app := newApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/faqs", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestResourceGet(t *testing.T) {
	store := &fakeStore{
		getFn: func(key string) (models.FAQ, error) {
			if key == "ada" {
				return models.FAQ{ID: 1, Question: "Q"}, nil
			}
			return models.FAQ{}, crud.ErrNotFound
		},
	}
	app := newApp(store)

	t.Run("ketemu", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/faqs/ada", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("tidak ketemu membalas 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/faqs/hilang", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.JSONEq(t, `"faq not found"`, string(body["error"]))
	})
}

func TestResourceUpdate(t *testing.T) {
	t.Run("id bukan angka membalas 400", func(t *testing.T) {
		app := newApp(&fakeStore{})

		req := httptest.NewRequest("PUT", "/admin/faqs/abc", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("id tidak ada membalas 404", func(t *testing.T) {
		store := &fakeStore{
			updateFn: func(int, models.FAQCreateRequest) (models.FAQ, error) {
				return models.FAQ{}, crud.ErrNotFound
			},
		}
		app := newApp(store)

		req := httptest.NewRequest("PUT", "/admin/faqs/99",
			strings.NewReader(`{"question":"Q","answer":"A","orderIndex":1}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("sukses mengembalikan record baru", func(t *testing.T) {
		store := &fakeStore{
			updateFn: func(id int, in models.FAQCreateRequest) (models.FAQ, error) {
				return models.FAQ{ID: id, Question: in.Question, Answer: in.Answer, OrderIndex: in.OrderIndex}, nil
			},
		}
		app := newApp(store)

		req := httptest.NewRequest("PUT", "/admin/faqs/3",
			strings.NewReader(`{"question":"Baru","answer":"Jawaban","orderIndex":2}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		var faq models.FAQ
		require.NoError(t, json.Unmarshal(body["faq"], &faq))
		assert.Equal(t, 3, faq.ID)
		assert.Equal(t, "Baru", faq.Question)
	})
}

func TestResourceDelete(t *testing.T) {
	t.Run("sukses membalas 204 tanpa body", func(t *testing.T) {
		store := &fakeStore{}
		app := newApp(store)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/faqs/5", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Equal(t, 5, store.deletedID)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("id bukan angka membalas 400", func(t *testing.T) {
		app := newApp(&fakeStore{})

		resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/faqs/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

package models

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func TestBlogPostCreateRequestValidate(t *testing.T) {
	valid := BlogPostCreateRequest{
		Title:   "Tips Memilih CCTV",
		Slug:    "tips-memilih-cctv",
		Content: "Isi artikel.",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("field wajib kosong", func(t *testing.T) {
		errs := fieldErrors(t, BlogPostCreateRequest{}.Validate())
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "slug")
		assert.Contains(t, errs, "content")
	})

	t.Run("slug dengan spasi atau huruf besar ditolak", func(t *testing.T) {
		for _, bad := range []string{"Tips CCTV", "Tips-CCTV", "tips cctv"} {
			req := valid
			req.Slug = bad
			errs := fieldErrors(t, req.Validate())
			assert.Contains(t, errs, "slug", "slug %q harusnya invalid", bad)
		}
	})

	t.Run("excerpt opsional", func(t *testing.T) {
		req := valid
		req.Excerpt = nil
		assert.NoError(t, req.Validate())
	})
}

func TestFAQCreateRequestValidate(t *testing.T) {
	t.Run("valid dengan order nol", func(t *testing.T) {
		req := FAQCreateRequest{Question: "Q", Answer: "A", OrderIndex: 0}
		assert.NoError(t, req.Validate())
	})

	t.Run("order negatif ditolak", func(t *testing.T) {
		req := FAQCreateRequest{Question: "Q", Answer: "A", OrderIndex: -1}
		errs := fieldErrors(t, req.Validate())
		assert.Contains(t, errs, "orderIndex")
	})

	t.Run("question dan answer wajib", func(t *testing.T) {
		errs := fieldErrors(t, FAQCreateRequest{OrderIndex: 1}.Validate())
		assert.Contains(t, errs, "question")
		assert.Contains(t, errs, "answer")
	})
}

func TestTestimonialCreateRequestValidate(t *testing.T) {
	valid := TestimonialCreateRequest{Name: "Budi", Content: "Pemasangan rapi", Rating: 5}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rating di luar 1-5 ditolak", func(t *testing.T) {
		for _, bad := range []int{0, -1, 6, 100} {
			req := valid
			req.Rating = bad
			errs := fieldErrors(t, req.Validate())
			assert.Contains(t, errs, "rating", "rating %d harusnya invalid", bad)
		}
	})

	t.Run("batas rating inklusif", func(t *testing.T) {
		for _, ok := range []int{1, 5} {
			req := valid
			req.Rating = ok
			assert.NoError(t, req.Validate())
		}
	})

	t.Run("company opsional", func(t *testing.T) {
		company := "Toko Jaya"
		req := valid
		req.Company = &company
		assert.NoError(t, req.Validate())
	})
}

func TestPortfolioProjectCreateRequestValidate(t *testing.T) {
	t.Run("hanya title dan projectType yang wajib", func(t *testing.T) {
		req := PortfolioProjectCreateRequest{Title: "Ruko Sunter", ProjectType: "Retail"}
		assert.NoError(t, req.Validate())
	})

	t.Run("field wajib kosong", func(t *testing.T) {
		errs := fieldErrors(t, PortfolioProjectCreateRequest{}.Validate())
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "projectType")
	})

	t.Run("camera count negatif ditolak", func(t *testing.T) {
		cameras := -4
		req := PortfolioProjectCreateRequest{Title: "X", ProjectType: "Retail", CameraCount: &cameras}
		errs := fieldErrors(t, req.Validate())
		assert.Contains(t, errs, "cameraCount")
	})
}

func TestContactSubmissionCreateRequestValidate(t *testing.T) {
	t.Run("valid tanpa email", func(t *testing.T) {
		req := ContactSubmissionCreateRequest{Name: "Budi", WhatsApp: "0812345678", Needs: "Toko 4 kamera"}
		assert.NoError(t, req.Validate())
	})

	t.Run("field wajib kosong", func(t *testing.T) {
		errs := fieldErrors(t, ContactSubmissionCreateRequest{}.Validate())
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "whatsapp")
		assert.Contains(t, errs, "needs")
	})

	t.Run("spasi saja dianggap kosong", func(t *testing.T) {
		req := ContactSubmissionCreateRequest{Name: "  ", WhatsApp: "0812", Needs: "x"}
		errs := fieldErrors(t, req.Validate())
		assert.Contains(t, errs, "name")
	})
}

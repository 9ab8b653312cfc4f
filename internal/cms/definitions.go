// Package cms memetakan lima entity konten ke tabel PostgreSQL-nya.
// Semua perilaku CRUD ada di internal/crud; di sini hanya deskripsi
// per-entity: kolom, ordering, dan visibility.
package cms

import (
	"visionguard-backend/internal/crud"
	"visionguard-backend/internal/models"
)

// BlogPosts tabel blog_posts. Satu-satunya entity dengan published
// gate, lookup slug, dan kolom updated_at.
func BlogPosts() crud.Definition[models.BlogPostCreateRequest] {
	return crud.Definition[models.BlogPostCreateRequest]{
		Table:      "blog_posts",
		Columns:    []string{"id", "title", "slug", "excerpt", "content", "published", "created_at", "updated_at"},
		InsertCols: []string{"title", "slug", "excerpt", "content", "published"},
		Args: func(r models.BlogPostCreateRequest) []any {
			return []any{r.Title, r.Slug, r.Excerpt, r.Content, r.Published}
		},
		OrderBy:      "created_at DESC",
		PublicFilter: "published = TRUE",
		KeyColumn:    "slug",
		TouchUpdated: true,
	}
}

// FAQs tabel faqs, urut order_index lalu created_at (keduanya ascending).
func FAQs() crud.Definition[models.FAQCreateRequest] {
	return crud.Definition[models.FAQCreateRequest]{
		Table:      "faqs",
		Columns:    []string{"id", "question", "answer", "order_index", "created_at"},
		InsertCols: []string{"question", "answer", "order_index"},
		Args: func(r models.FAQCreateRequest) []any {
			return []any{r.Question, r.Answer, r.OrderIndex}
		},
		OrderBy: "order_index ASC, created_at ASC",
	}
}

// Testimonials tabel testimonials, terbaru duluan.
func Testimonials() crud.Definition[models.TestimonialCreateRequest] {
	return crud.Definition[models.TestimonialCreateRequest]{
		Table:      "testimonials",
		Columns:    []string{"id", "name", "company", "content", "rating", "created_at"},
		InsertCols: []string{"name", "company", "content", "rating"},
		Args: func(r models.TestimonialCreateRequest) []any {
			return []any{r.Name, r.Company, r.Content, r.Rating}
		},
		OrderBy: "created_at DESC",
	}
}

// PortfolioProjects tabel portfolio_projects. completion_date DESC
// dengan NULLS LAST supaya proyek tanpa tanggal jatuh ke belakang
// (default Postgres untuk DESC justru NULLS FIRST).
func PortfolioProjects() crud.Definition[models.PortfolioProjectCreateRequest] {
	return crud.Definition[models.PortfolioProjectCreateRequest]{
		Table:      "portfolio_projects",
		Columns:    []string{"id", "title", "description", "image_url", "project_type", "client_name", "completion_date", "camera_count", "created_at"},
		InsertCols: []string{"title", "description", "image_url", "project_type", "client_name", "completion_date", "camera_count"},
		Args: func(r models.PortfolioProjectCreateRequest) []any {
			return []any{r.Title, r.Description, r.ImageURL, r.ProjectType, r.ClientName, r.CompletionDate, r.CameraCount}
		},
		OrderBy: "completion_date DESC NULLS LAST, created_at DESC",
	}
}

// ContactSubmissions tabel contact_submissions, terbaru duluan.
func ContactSubmissions() crud.Definition[models.ContactSubmissionCreateRequest] {
	return crud.Definition[models.ContactSubmissionCreateRequest]{
		Table:      "contact_submissions",
		Columns:    []string{"id", "name", "whatsapp", "needs", "email", "created_at"},
		InsertCols: []string{"name", "whatsapp", "needs", "email"},
		Args: func(r models.ContactSubmissionCreateRequest) []any {
			return []any{r.Name, r.WhatsApp, r.Needs, r.Email}
		},
		OrderBy: "created_at DESC",
	}
}

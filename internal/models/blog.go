package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"
)

// BlogPost artikel blog. published menentukan visibilitas publik:
// listing/detail publik hanya melihat row dengan published = true.
type BlogPost struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Slug      string    `json:"slug" db:"slug"`
	Excerpt   *string   `json:"excerpt,omitempty" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BlogPostCreateRequest input create sekaligus update (update selalu
// full-record, id diambil dari path).
type BlogPostCreateRequest struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Excerpt   *string `json:"excerpt"`
	Content   string  `json:"content"`
	Published bool    `json:"published"`
}

// Validate memastikan field wajib terisi dan slug berbentuk
// lowercase-hyphen sebelum menyentuh database.
func (r BlogPostCreateRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = validation.NewError("cms.blog.title_required", "title is required")
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs["slug"] = validation.NewError("cms.blog.slug_required", "slug is required")
	} else if !slug.IsValid(r.Slug) {
		errs["slug"] = validation.NewError("cms.blog.slug_invalid", "slug must be lowercase letters, digits, and hyphens")
	}
	if strings.TrimSpace(r.Content) == "" {
		errs["content"] = validation.NewError("cms.blog.content_required", "content is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

package cms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionguard-backend/internal/models"
)

func TestBlogPostsDefinition(t *testing.T) {
	def := BlogPosts()

	t.Run("insert touches updated_at", func(t *testing.T) {
		assert.Equal(t,
			"INSERT INTO blog_posts (title, slug, excerpt, content, published, updated_at) "+
				"VALUES ($1, $2, $3, $4, $5, NOW()) "+
				"RETURNING id, title, slug, excerpt, content, published, created_at, updated_at",
			def.InsertQuery())
	})

	t.Run("public listing filters published", func(t *testing.T) {
		assert.Equal(t,
			"SELECT id, title, slug, excerpt, content, published, created_at, updated_at "+
				"FROM blog_posts WHERE published = TRUE ORDER BY created_at DESC",
			def.ListQuery(true))
	})

	t.Run("admin listing has no filter", func(t *testing.T) {
		assert.Equal(t,
			"SELECT id, title, slug, excerpt, content, published, created_at, updated_at "+
				"FROM blog_posts ORDER BY created_at DESC",
			def.ListQuery(false))
	})

	t.Run("slug lookup only sees published rows", func(t *testing.T) {
		assert.Equal(t,
			"SELECT id, title, slug, excerpt, content, published, created_at, updated_at "+
				"FROM blog_posts WHERE slug = $1 AND published = TRUE",
			def.GetByKeyQuery())
	})

	t.Run("update refreshes updated_at and returns the row", func(t *testing.T) {
		assert.Equal(t,
			"UPDATE blog_posts SET title = $1, slug = $2, excerpt = $3, content = $4, published = $5, "+
				"updated_at = NOW() WHERE id = $6 "+
				"RETURNING id, title, slug, excerpt, content, published, created_at, updated_at",
			def.UpdateQuery())
	})

	t.Run("delete has no returning clause", func(t *testing.T) {
		assert.Equal(t, "DELETE FROM blog_posts WHERE id = $1", def.DeleteQuery())
	})

	t.Run("args order matches insert columns", func(t *testing.T) {
		excerpt := "ringkas"
		args := def.Args(models.BlogPostCreateRequest{
			Title:     "Judul",
			Slug:      "judul",
			Excerpt:   &excerpt,
			Content:   "isi",
			Published: true,
		})
		require.Len(t, args, len(def.InsertCols))
		assert.Equal(t, []any{"Judul", "judul", &excerpt, "isi", true}, args)
	})
}

func TestFAQsDefinition(t *testing.T) {
	def := FAQs()

	// order_index naik, seri dipecah created_at naik
	assert.Equal(t,
		"SELECT id, question, answer, order_index, created_at FROM faqs "+
			"ORDER BY order_index ASC, created_at ASC",
		def.ListQuery(false))

	// tanpa visibility gate listing publik identik dengan admin
	assert.Equal(t, def.ListQuery(false), def.ListQuery(true))

	args := def.Args(models.FAQCreateRequest{Question: "Q", Answer: "A", OrderIndex: 3})
	assert.Equal(t, []any{"Q", "A", 3}, args)
}

func TestTestimonialsDefinition(t *testing.T) {
	def := Testimonials()

	assert.Equal(t,
		"SELECT id, name, company, content, rating, created_at FROM testimonials "+
			"ORDER BY created_at DESC",
		def.ListQuery(true))

	args := def.Args(models.TestimonialCreateRequest{Name: "Budi", Content: "Mantap", Rating: 5})
	require.Len(t, args, 4)
	assert.Nil(t, args[1]) // company opsional
}

func TestPortfolioProjectsDefinition(t *testing.T) {
	def := PortfolioProjects()

	// NULLS LAST: proyek tanpa tanggal selesai jatuh ke belakang
	assert.Contains(t, def.ListQuery(false), "ORDER BY completion_date DESC NULLS LAST, created_at DESC")

	completed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cameras := 8
	args := def.Args(models.PortfolioProjectCreateRequest{
		Title:          "Gudang Cakung",
		ProjectType:    "Industri",
		CompletionDate: &completed,
		CameraCount:    &cameras,
	})
	require.Len(t, args, len(def.InsertCols))
	assert.Equal(t, "Gudang Cakung", args[0])
	assert.Equal(t, &completed, args[5])
	assert.Equal(t, &cameras, args[6])
}

func TestContactSubmissionsDefinition(t *testing.T) {
	def := ContactSubmissions()

	assert.Equal(t,
		"SELECT id, name, whatsapp, needs, email, created_at FROM contact_submissions "+
			"ORDER BY created_at DESC",
		def.ListQuery(false))
	assert.Equal(t,
		"INSERT INTO contact_submissions (name, whatsapp, needs, email) VALUES ($1, $2, $3, $4) "+
			"RETURNING id, name, whatsapp, needs, email, created_at",
		def.InsertQuery())
}

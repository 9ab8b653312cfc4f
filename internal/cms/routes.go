package cms

import (
	"github.com/gofiber/fiber/v2"

	"visionguard-backend/internal/crud"
	"visionguard-backend/internal/models"
)

// RegisterRoutes memasang seluruh endpoint CMS. Prefix /admin hanya
// konvensi penamaan path: tidak ada pengecekan kredensial di server,
// gate-nya ada di sisi client (lihat cmd/cmsctl).
func RegisterRoutes(app *fiber.App, db crud.DB) {
	posts := crud.NewResource[models.BlogPost, models.BlogPostCreateRequest](
		crud.NewService[models.BlogPost](db, BlogPosts()), "post", "posts")
	faqs := crud.NewResource[models.FAQ, models.FAQCreateRequest](
		crud.NewService[models.FAQ](db, FAQs()), "faq", "faqs")
	testimonials := crud.NewResource[models.Testimonial, models.TestimonialCreateRequest](
		crud.NewService[models.Testimonial](db, Testimonials()), "testimonial", "testimonials")
	projects := crud.NewResource[models.PortfolioProject, models.PortfolioProjectCreateRequest](
		crud.NewService[models.PortfolioProject](db, PortfolioProjects()), "project", "projects")
	submissions := crud.NewResource[models.ContactSubmission, models.ContactSubmissionCreateRequest](
		crud.NewService[models.ContactSubmission](db, ContactSubmissions()), "submission", "submissions")

	// Blog: satu-satunya entity dengan split listing publik/admin dan
	// lookup detail by slug.
	app.Post("/blog", posts.Create)
	app.Get("/blog", posts.List)
	app.Get("/admin/blog", posts.ListAll)
	app.Get("/blog/:slug", posts.Get("slug"))
	app.Put("/admin/blog/:id", posts.Update)
	app.Delete("/admin/blog/:id", posts.Delete)

	// FAQ
	app.Post("/faqs", faqs.Create)
	app.Get("/faqs", faqs.List)
	app.Put("/admin/faqs/:id", faqs.Update)
	app.Delete("/admin/faqs/:id", faqs.Delete)

	// Testimonial
	app.Post("/testimonials", testimonials.Create)
	app.Get("/testimonials", testimonials.List)
	app.Put("/admin/testimonials/:id", testimonials.Update)
	app.Delete("/admin/testimonials/:id", testimonials.Delete)

	// Portfolio
	app.Post("/portfolio", projects.Create)
	app.Get("/portfolio", projects.List)
	app.Put("/admin/portfolio/:id", projects.Update)
	app.Delete("/admin/portfolio/:id", projects.Delete)

	// Kontak: publik hanya bisa submit, listing khusus admin.
	app.Post("/contact", submissions.Create)
	app.Get("/admin/contact", submissions.ListAll)
}

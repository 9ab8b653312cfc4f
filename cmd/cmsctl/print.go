package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"visionguard-backend/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printPosts(w io.Writer, posts []models.BlogPost) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tSLUG\tPUBLISHED\tUPDATED")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\n",
			p.ID, p.Title, p.Slug, p.Published, p.UpdatedAt.Format(time.DateOnly))
	}
	tw.Flush()
}

func printFAQs(w io.Writer, faqs []models.FAQ) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tORDER\tQUESTION")
	for _, f := range faqs {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", f.ID, f.OrderIndex, f.Question)
	}
	tw.Flush()
}

func printTestimonials(w io.Writer, items []models.Testimonial) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCOMPANY\tRATING")
	for _, t := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", t.ID, t.Name, strOrDash(t.Company), t.Rating)
	}
	tw.Flush()
}

func printProjects(w io.Writer, projects []models.PortfolioProject) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tCLIENT\tCOMPLETED\tCAMERAS")
	for _, p := range projects {
		completed := "-"
		if p.CompletionDate != nil {
			completed = p.CompletionDate.Format(time.DateOnly)
		}
		cameras := "-"
		if p.CameraCount != nil {
			cameras = fmt.Sprintf("%d", *p.CameraCount)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.ProjectType, strOrDash(p.ClientName), completed, cameras)
	}
	tw.Flush()
}

func printSubmissions(w io.Writer, subs []models.ContactSubmission) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tWHATSAPP\tEMAIL\tNEEDS\tRECEIVED")
	for _, s := range subs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.WhatsApp, strOrDash(s.Email), s.Needs, s.CreatedAt.Format(time.DateOnly))
	}
	tw.Flush()
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// optional mengubah nilai flag string jadi pointer: string kosong
// dianggap tidak diisi (kolom nullable).
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

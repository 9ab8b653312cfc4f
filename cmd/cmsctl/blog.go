package main

import (
	"fmt"
	"strconv"

	slug "github.com/goliatone/go-slug"
	"github.com/spf13/cobra"

	"visionguard-backend/internal/models"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Kelola artikel blog",
}

var blogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan semua post (termasuk draft)",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := api().ListAllPosts(cmd.Context())
		if err != nil {
			return err
		}
		printPosts(cmd.OutOrStdout(), posts)
		return nil
	},
}

var blogCreateFlags = struct {
	title, slug, excerpt, content string
	published                     bool
}{}

var blogCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Buat post baru",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		req, err := blogRequest()
		if err != nil {
			return err
		}
		post, err := api().CreatePost(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Post #%d dibuat (/%s)\n", post.ID, post.Slug)
		return refreshPosts(cmd)
	},
}

var blogUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update post (full record)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		req, err := blogRequest()
		if err != nil {
			return err
		}
		post, err := api().UpdatePost(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Post #%d diupdate\n", post.ID)
		return refreshPosts(cmd)
	},
}

var blogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api().DeletePost(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Post #%d dihapus\n", id)
		return refreshPosts(cmd)
	},
}

// blogRequest merakit request dari flag. Slug kosong diturunkan
// otomatis dari title; operator tetap bisa menimpa lewat --slug.
func blogRequest() (models.BlogPostCreateRequest, error) {
	s := blogCreateFlags.slug
	if s == "" {
		derived, err := deriveSlug(blogCreateFlags.title)
		if err != nil {
			return models.BlogPostCreateRequest{}, fmt.Errorf("derive slug: %w", err)
		}
		s = derived
	}
	return models.BlogPostCreateRequest{
		Title:     blogCreateFlags.title,
		Slug:      s,
		Excerpt:   optional(blogCreateFlags.excerpt),
		Content:   blogCreateFlags.content,
		Published: blogCreateFlags.published,
	}, nil
}

func deriveSlug(title string) (string, error) {
	return slug.Normalize(title)
}

// refreshPosts menampilkan ulang listing admin setelah mutasi.
func refreshPosts(cmd *cobra.Command) error {
	posts, err := api().ListAllPosts(cmd.Context())
	if err != nil {
		return err
	}
	printPosts(cmd.OutOrStdout(), posts)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{blogCreateCmd, blogUpdateCmd} {
		c.Flags().StringVar(&blogCreateFlags.title, "title", "", "judul post")
		c.Flags().StringVar(&blogCreateFlags.slug, "slug", "", "slug URL (kosong = diturunkan dari title)")
		c.Flags().StringVar(&blogCreateFlags.excerpt, "excerpt", "", "ringkasan (opsional)")
		c.Flags().StringVar(&blogCreateFlags.content, "content", "", "isi post")
		c.Flags().BoolVar(&blogCreateFlags.published, "published", false, "tampilkan di publik")
		_ = c.MarkFlagRequired("title")
		_ = c.MarkFlagRequired("content")
	}

	blogCmd.AddCommand(blogListCmd, blogCreateCmd, blogUpdateCmd, blogDeleteCmd)
	rootCmd.AddCommand(blogCmd)
}

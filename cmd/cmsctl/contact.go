package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"visionguard-backend/internal/models"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Lihat kiriman form kontak",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan semua kiriman kontak",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		subs, err := api().ListSubmissions(cmd.Context())
		if err != nil {
			return err
		}
		printSubmissions(cmd.OutOrStdout(), subs)
		return nil
	},
}

var contactFlags = struct {
	name, whatsapp, email, needs string
}{}

// submit memakai endpoint publik yang sama dengan form di website,
// berguna untuk smoke test tanpa membuka situsnya.
var contactSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Kirim form kontak (endpoint publik)",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := api().SubmitContact(cmd.Context(), models.ContactSubmissionCreateRequest{
			Name:     contactFlags.name,
			WhatsApp: contactFlags.whatsapp,
			Needs:    contactFlags.needs,
			Email:    optional(contactFlags.email),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Kiriman #%d diterima\n", sub.ID)
		return nil
	},
}

func init() {
	contactSubmitCmd.Flags().StringVar(&contactFlags.name, "name", "", "nama")
	contactSubmitCmd.Flags().StringVar(&contactFlags.whatsapp, "whatsapp", "", "nomor WhatsApp")
	contactSubmitCmd.Flags().StringVar(&contactFlags.email, "email", "", "email (opsional)")
	contactSubmitCmd.Flags().StringVar(&contactFlags.needs, "needs", "", "kebutuhan")
	_ = contactSubmitCmd.MarkFlagRequired("name")
	_ = contactSubmitCmd.MarkFlagRequired("whatsapp")
	_ = contactSubmitCmd.MarkFlagRequired("needs")

	contactCmd.AddCommand(contactListCmd, contactSubmitCmd)
	rootCmd.AddCommand(contactCmd)
}

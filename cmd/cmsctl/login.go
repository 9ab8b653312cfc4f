package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Simple password check - konstanta literal yang dibandingkan di sisi
// client. Bukan mekanisme keamanan; siapa pun bisa memanggil endpoint
// /admin/* langsung.
const adminPassword = "visionguard2024"

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Buka sesi admin lokal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginPassword != adminPassword {
			return errors.New("password salah")
		}
		if err := writeSession(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Login berhasil")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Tutup sesi admin lokal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clearSession(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logout berhasil")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password admin")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd)
}

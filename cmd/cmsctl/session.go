package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File penanda login di direktori config user. Murni gate sisi client:
// API-nya sendiri tidak memeriksa kredensial apa pun.
func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "cmsctl", "session"), nil
}

func writeSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte("logged-in\n"), 0o600)
}

func clearSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// requireSession dipanggil sebelum setiap mutasi.
func requireSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return errors.New("not logged in, run 'cmsctl login' first")
	}
	return nil
}

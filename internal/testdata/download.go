//go:build ignore
// +build ignore

// Download fetches the complete emoji test data from unicode.org, replacing
// the excerpt. Usage:
//
//    go run download.go [version]
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

func main() {
	version := "15.1"
	if len(os.Args) > 1 {
		version = os.Args[1]
	}
	url := fmt.Sprintf("https://unicode.org/Public/emoji/%s/emoji-test.txt", version)
	if err := download(url, "emoji-test.txt"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}

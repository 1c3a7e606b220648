package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Downloader receives a finished export artifact. The default
// implementation writes a file; tests substitute their own.
type Downloader interface {
	Download(filename string, data []byte) error
}

// FileDownloader writes export artifacts into Dir (the working
// directory when empty).
type FileDownloader struct {
	Dir string
}

func (d FileDownloader) Download(filename string, data []byte) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0644)
}

// ExportChat hands the active conversation's transcript to the
// downloader and returns the artifact filename, which embeds the
// export time. The store itself is left untouched.
func ExportChat(store *SessionStore, d Downloader, now time.Time) (string, error) {
	filename := fmt.Sprintf("cv-assistant-%d.txt", now.UnixMilli())
	if err := d.Download(filename, []byte(store.Transcript())); err != nil {
		return "", err
	}
	return filename, nil
}

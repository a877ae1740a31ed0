package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/IMLS/state-program-report/internal/logger"
)

const maxConcurrentUploads = 5

// File is one output artifact to publish: its path inside the repository
// and its contents.
type File struct {
	Path string
	Data []byte
}

// Uploader pushes generated artifacts to the repository, creating new files
// and updating existing ones in place.
type Uploader struct {
	client Client
	logger *logger.Logger
}

// NewUploader creates an uploader over a contents-API client.
func NewUploader(client Client, log *logger.Logger) *Uploader {
	return &Uploader{
		client: client,
		logger: log,
	}
}

// Result contains the outcome of one publish run.
type Result struct {
	Errors  []error
	Created int
	Updated int
}

// LoadTree reads the artifacts written under baseDir, keyed by their
// path relative to baseDir.
func LoadTree(baseDir string, relPaths []string) ([]File, error) {
	files := make([]File, 0, len(relPaths))

	for _, rel := range relPaths {
		data, err := os.ReadFile(filepath.Join(baseDir, rel))
		if err != nil {
			return nil, fmt.Errorf("failed to read artifact: %w", err)
		}

		files = append(files, File{Path: filepath.ToSlash(rel), Data: data})
	}

	return files, nil
}

// Upload publishes every file to the branch, bounded to a handful of
// concurrent requests. Individual file failures are collected rather than
// aborting the run.
func (u *Uploader) Upload(files []File, branch, message string) (*Result, error) {
	result := &Result{}

	u.logger.Info("starting upload", "files", len(files), "branch", branch)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, maxConcurrentUploads)
	)

	for _, file := range files {
		wg.Add(1)
		go func(f File) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			created, err := u.uploadFile(f, branch, message)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				u.logger.Error("failed to upload file", "path", f.Path, "error", err)
				result.Errors = append(result.Errors, err)
				return
			}

			if created {
				result.Created++
			} else {
				result.Updated++
			}

			processed := result.Created + result.Updated + len(result.Errors)
			if processed%10 == 0 || processed == len(files) {
				u.logger.Info("upload progress", "processed", processed, "total", len(files))
			}
		}(file)
	}

	wg.Wait()

	return result, nil
}

// uploadFile creates or updates a single file, returning true when created.
func (u *Uploader) uploadFile(file File, branch, message string) (bool, error) {
	sha, err := u.client.ContentSHA(file.Path, branch)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", file.Path, err)
	}

	if err := u.client.PutContent(file.Path, branch, message, file.Data, sha); err != nil {
		return false, fmt.Errorf("failed to put %s: %w", file.Path, err)
	}

	return sha == "", nil
}

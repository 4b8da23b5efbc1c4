// Package writer persists finished artifacts to the output tree and renders
// previews for dry runs and tool integration.
package writer

import (
	"os"
	"path/filepath"

	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/logger"
	"github.com/nexus4812/php-class-gen/psr4"
)

// FileArtifact is one assembled source file awaiting writing or preview.
type FileArtifact struct {
	QualifiedName string
	Namespace     string
	Name          string // primary type short name, becomes the file name
	Content       string
}

// Preview describes an artifact for display without filesystem mutation.
type Preview struct {
	FilePath    string `json:"file_path"`
	Content     string `json:"content"`
	PrimaryType string `json:"primary_type"`
	Namespace   string `json:"namespace"`
}

// Writer writes artifacts under the directories the resolver computes.
type Writer struct {
	resolver *psr4.Resolver
	baseDir  string // prepended to every resolved path; empty for CWD-relative output
}

// New creates a writer over a validated resolver.
func New(resolver *psr4.Resolver) *Writer {
	return &Writer{resolver: resolver}
}

// WithBaseDir roots all output under dir instead of the working directory.
func (w *Writer) WithBaseDir(dir string) *Writer {
	w.baseDir = dir
	return w
}

// Path returns the output path for an artifact without writing it.
func (w *Writer) Path(artifact *FileArtifact) string {
	p := w.resolver.ResolveFile(artifact.QualifiedName)
	if w.baseDir != "" {
		p = filepath.Join(w.baseDir, p)
	}
	return filepath.FromSlash(p)
}

// Write persists one artifact, creating directories as needed. With dryRun
// set no filesystem mutation occurs; the target path is still computed and
// returned so callers can report what would happen.
func (w *Writer) Write(artifact *FileArtifact, dryRun bool) (string, error) {
	path := w.Path(artifact)

	if dryRun {
		logger.Logger.Debugw("dry run, skipping write", "path", path)
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(artifact.Content), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	logger.Logger.Debugw("wrote artifact", "path", path, "type", artifact.QualifiedName)
	return path, nil
}

// WriteAll persists a batch in order. The first failure aborts the rest;
// callers relying on all-or-nothing semantics should dry-run validate first.
func (w *Writer) WriteAll(artifacts []*FileArtifact, dryRun bool) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		path, err := w.Write(artifact, dryRun)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Preview renders an artifact for display without touching the filesystem.
func (w *Writer) Preview(artifact *FileArtifact) Preview {
	return Preview{
		FilePath:    w.Path(artifact),
		Content:     artifact.Content,
		PrimaryType: artifact.Name,
		Namespace:   artifact.Namespace,
	}
}

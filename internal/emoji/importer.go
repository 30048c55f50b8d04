// Package emoji imports guild emojis from a user-supplied ZIP archive.
package emoji

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Import limits, matching what the platform accepts per emoji.
const (
	MaxArchiveBytes = 15 * 1024 * 1024
	MaxEmojiBytes   = 256 * 1024
	MaxPerRun       = 50
)

// ErrTooLarge is returned when the archive exceeds MaxArchiveBytes.
var ErrTooLarge = errors.New("archive too large")

// ErrNotZip is returned when the payload is not a readable ZIP archive.
var ErrNotZip = errors.New("invalid zip archive")

var imageExts = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// Candidate is one image pulled out of the archive, ready to upload.
type Candidate struct {
	Name string
	Ext  string
	Data []byte
	Hash string
}

// DataURI encodes the image as the inline payload the emoji API expects.
func (c *Candidate) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", imageExts[c.Ext], base64.StdEncoding.EncodeToString(c.Data))
}

// Report summarizes one import run.
type Report struct {
	Added   int
	Skipped int
	Failed  int
	// Total counts every image entry found, including those beyond the
	// per-run cap.
	Total int
}

// Truncated reports whether the archive held more images than one run
// processes.
func (r *Report) Truncated() bool {
	return r.Total > MaxPerRun
}

// Uploader is the guild-side half of an import: listing existing emoji
// names and creating new ones. The bot layer adapts the Discord session
// to this.
type Uploader interface {
	ExistingNames(ctx context.Context) (map[string]bool, error)
	Create(ctx context.Context, name, dataURI string) error
}

// Importer downloads emoji archives and drives uploads.
type Importer struct {
	client *http.Client
}

// NewImporter creates an importer with a bounded-time HTTP client.
func NewImporter() *Importer {
	return &Importer{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Download fetches url into memory, failing once the body exceeds
// MaxArchiveBytes.
func (i *Importer) Download(ctx context.Context, url string) ([]byte, error) {
	return i.fetch(ctx, url, MaxArchiveBytes)
}

func (i *Importer) fetch(ctx context.Context, url string, maxBytes int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed (%d)", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("download read failed: %w", err)
	}
	if len(data) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// ExtractImages pulls every png/jpg/jpeg/gif entry out of the archive.
// Oversized entries are kept in the list with nil Data so the run can
// count them as failures.
func ExtractImages(archive []byte) ([]Candidate, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, ErrNotZip
	}

	var out []Candidate
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(f.Name))
		if _, ok := imageExts[ext]; !ok {
			continue
		}

		c := Candidate{
			Name: SanitizeName(strings.TrimSuffix(path.Base(f.Name), path.Ext(f.Name))),
			Ext:  ext,
		}
		if f.UncompressedSize64 <= MaxEmojiBytes {
			rc, err := f.Open()
			if err == nil {
				data, rerr := io.ReadAll(io.LimitReader(rc, MaxEmojiBytes+1))
				rc.Close()
				if rerr == nil && len(data) <= MaxEmojiBytes {
					sum := sha256.Sum256(data)
					c.Data = data
					c.Hash = hex.EncodeToString(sum[:])
				}
			}
		}
		out = append(out, c)
	}
	return out, nil
}

var (
	invalidEmojiChars = regexp.MustCompile(`[^a-z0-9_]`)
	repeatUnderscores = regexp.MustCompile(`_+`)
)

// SanitizeName maps an arbitrary file name to a valid emoji name:
// lowercase [a-z0-9_], 2 to 32 characters.
func SanitizeName(name string) string {
	n := strings.ToLower(name)
	n = invalidEmojiChars.ReplaceAllString(n, "_")
	n = repeatUnderscores.ReplaceAllString(n, "_")
	n = strings.Trim(n, "_")
	if len(n) > 32 {
		n = n[:32]
	}
	if len(n) < 2 {
		n = fmt.Sprintf("emoji_%d", time.Now().UnixMilli())
	}
	return n
}

// Run downloads the archive at url and uploads its images through up.
// Existing names and duplicate contents within the run are skipped; at
// most MaxPerRun images are processed.
func (i *Importer) Run(ctx context.Context, url string, up Uploader) (*Report, error) {
	archive, err := i.Download(ctx, url)
	if err != nil {
		return nil, err
	}

	candidates, err := ExtractImages(archive)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &Report{}, nil
	}

	existing, err := up.ExistingNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild emojis: %w", err)
	}

	report := &Report{Total: len(candidates)}
	seenHashes := make(map[string]bool)

	batch := candidates
	if len(batch) > MaxPerRun {
		batch = batch[:MaxPerRun]
	}
	for _, c := range batch {
		if c.Data == nil {
			report.Failed++
			continue
		}
		if existing[c.Name] || seenHashes[c.Hash] {
			report.Skipped++
			continue
		}

		if err := up.Create(ctx, c.Name, c.DataURI()); err != nil {
			log.Warn().Err(err).Str("name", c.Name).Msg("emoji upload failed")
			report.Failed++
			continue
		}
		existing[c.Name] = true
		seenHashes[c.Hash] = true
		report.Added++
	}
	return report, nil
}

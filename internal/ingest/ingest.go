// Package ingest turns URLs, files and pasted images into the normalised
// content that gets stored as a logged item.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"daily-journal/internal/apperr"
	"daily-journal/internal/model"
)

const (
	untitled   = "Untitled"
	imageTitle = "Image"
)

// ParsedContent is the normalised result of ingesting a URL or file.
type ParsedContent struct {
	Title       string
	Kind        model.ItemKind
	SourceURL   string
	Description string
	Thumbnail   []byte
	RawBytes    []byte
}

// Options configures a Service. Zero values select the defaults.
type Options struct {
	Timeout  time.Duration
	MaxBytes int64
	MaxEdge  int
	Quality  int
	Logger   *slog.Logger
}

// Service fetches and parses content for logged items.
type Service struct {
	fetcher *Fetcher
	thumbs  *Thumbnailer
	logger  *slog.Logger
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher: NewFetcher(opts.Timeout, opts.MaxBytes),
		thumbs:  NewThumbnailer(opts.MaxEdge, opts.Quality),
		logger:  logger.With("component", "ingest"),
	}
}

// FromURL fetches a page and extracts its title, description and preview image.
// Direct links to images are accepted and thumbnailed; other UTF-8 text is
// titled by host. Failing to fetch the
// preview image never fails the ingest.
func (s *Service) FromURL(ctx context.Context, rawURL string) (ParsedContent, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return ParsedContent{}, err
	}

	page, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		s.logger.Warn("fetch page failed", "url", u.String(), "error", err)
		return ParsedContent{}, err
	}

	content := ParsedContent{Kind: model.ItemKindURL, SourceURL: u.String()}

	switch {
	case isHTML(page.MediaType):
		meta := ExtractMeta(page.Body, page.URL)
		content.Title = firstNonEmpty(meta.Title, u.Hostname(), untitled)
		content.Description = meta.Description
		if meta.ImageURL != "" {
			content.Thumbnail = s.downloadThumbnail(ctx, meta.ImageURL)
		}
	case strings.HasPrefix(page.MediaType, "image/"):
		content.Title = strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))
		if content.Title == "" || content.Title == "." || content.Title == "/" {
			content.Title = u.Hostname()
		}
		thumb, err := s.thumbs.Make(page.Body)
		if err != nil {
			s.logger.Warn("thumbnail failed", "url", u.String(), "error", err)
		}
		content.Thumbnail = thumb
	case strings.HasPrefix(page.MediaType, "text/") && utf8.Valid(page.Body):
		content.Title = firstNonEmpty(u.Hostname(), untitled)
		content.Description = textSummary(page.Body)
	default:
		return ParsedContent{}, apperr.UnsupportedFormat(page.MediaType, nil)
	}

	return content, nil
}

// FromFile parses an uploaded file. The kind comes from the extension; hint is
// used only when the extension is not recognised.
func (s *Service) FromFile(_ context.Context, name string, data []byte, hint model.ItemKind) (ParsedContent, error) {
	if len(data) == 0 {
		return ParsedContent{}, apperr.UnsupportedFormat("file", fmt.Errorf("%s is empty", name))
	}

	kind := KindFromExtension(path.Ext(name))
	if kind == model.ItemKindUnknown && hint.Valid() && hint != model.ItemKindURL {
		kind = hint
	}

	content := ParsedContent{
		Title:    TitleFromFileName(name),
		Kind:     kind,
		RawBytes: data,
	}

	if kind == model.ItemKindImage {
		thumb, err := s.thumbs.Make(data)
		switch {
		case err == nil:
			content.Thumbnail = thumb
		case isHEIC(name):
			// No HEIC decoder; the original bytes are kept without a preview.
			s.logger.Debug("heic stored without thumbnail", "file", name)
		default:
			return ParsedContent{}, apperr.UnsupportedFormat("image", err)
		}
	}

	return content, nil
}

// FromImage parses a pasted image that has no file name.
func (s *Service) FromImage(_ context.Context, data []byte) (ParsedContent, error) {
	thumb, err := s.thumbs.Make(data)
	if err != nil {
		return ParsedContent{}, apperr.UnsupportedFormat("image", err)
	}
	return ParsedContent{
		Title:     imageTitle,
		Kind:      model.ItemKindImage,
		Thumbnail: thumb,
		RawBytes:  data,
	}, nil
}

func (s *Service) downloadThumbnail(ctx context.Context, rawURL string) []byte {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return nil
	}
	img, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		s.logger.Debug("thumbnail download failed", "url", rawURL, "error", err)
		return nil
	}
	thumb, err := s.thumbs.Make(img.Body)
	if err != nil {
		s.logger.Debug("thumbnail decode failed", "url", rawURL, "error", err)
		return nil
	}
	return thumb
}

func isHTML(mediaType string) bool {
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

package session

import (
	"context"

	"github.com/expokit/standplan/internal/palette"
	"github.com/expokit/standplan/internal/photo"
)

// paletteColor returns a picker that draws random colors from the
// shared tag palette. A store failure falls back to the default
// palette color so photo ingestion never blocks on tag lookup.
func (s *Session) paletteColor(ctx context.Context) func() string {
	tags, err := s.store.GetTags(ctx)
	if err != nil {
		s.log.Debug("palette lookup failed, using fallback color")
		return func() string { return palette.FallbackColor }
	}
	return func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		return palette.RandomColor(s.rng, tags)
	}
}

// AddPhotoPlaceholder appends a ready placeholder photo to the
// stand's draft.
func (s *Session) AddPhotoPlaceholder(ctx context.Context, standID string) {
	p := s.ingestor.Placeholder(s.paletteColor(ctx))
	s.editor.AppendPhoto(standID, p)
}

// AddPhotos ingests the selected files into the stand's draft. One
// pending slot per file is appended synchronously in selection order;
// decoding runs concurrently and each completion fills its reserved
// slot, marking it ready or failed. The returned channel closes when
// the whole batch has resolved.
func (s *Session) AddPhotos(ctx context.Context, standID string, files []photo.File) <-chan struct{} {
	tasks := s.ingestor.Prepare(files, s.paletteColor(ctx))
	for _, t := range tasks {
		s.editor.AppendPhoto(standID, t.Photo)
	}

	return s.ingestor.Run(ctx, tasks, func(photoID, previewURI string, err error) {
		errMsg := ""
		if err != nil {
			errMsg = err.Error()
		}
		s.editor.ResolvePhoto(standID, photoID, previewURI, errMsg)
	})
}

// RemovePhoto deletes the photo from the stand's draft. Removing a
// still-pending photo is allowed; its late completion is absorbed.
func (s *Session) RemovePhoto(standID, photoID string) {
	s.editor.RemovePhoto(standID, photoID)
}

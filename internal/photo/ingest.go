// Package photo converts user-selected image files into in-memory
// preview records. Each batch reserves one pending slot per file in
// selection order before any decoding starts, so completions can land
// out of order without reordering the gallery. A failed decode marks
// its slot failed instead of silently dropping it.
package photo

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/model"
)

// defaultLabel is used when a selected file has no name, and for
// placeholder photos.
const defaultLabel = "New Capture"

// File is one user-selected image file.
type File struct {
	Name string
	Path string
}

// Task pairs a reserved pending photo slot with its source file.
type Task struct {
	Photo model.Photo
	File  File
}

// Ingestor decodes photo batches. The zero decode hook reads the file
// from disk and produces a base64 data URI.
type Ingestor struct {
	log    *zap.Logger
	now    func() time.Time
	decode func(ctx context.Context, f File) (string, error)

	// lastMilli keeps photo-<timestamp> ids monotonic when two
	// placeholders or batches land within the same millisecond.
	mu        sync.Mutex
	lastMilli int64
}

// New creates an Ingestor.
func New(log *zap.Logger) *Ingestor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingestor{
		log:    log,
		now:    time.Now,
		decode: decodeDataURI,
	}
}

// nextMilli returns a strictly increasing millisecond value for
// photo id generation.
func (ing *Ingestor) nextMilli() int64 {
	ing.mu.Lock()
	defer ing.mu.Unlock()

	ms := ing.now().UnixMilli()
	if ms <= ing.lastMilli {
		ms = ing.lastMilli + 1
	}
	ing.lastMilli = ms
	return ms
}

// Placeholder builds a ready photo with no preview, colored by the
// caller's palette pick. Used by the manual "add photo" action when
// no file is selected.
func (ing *Ingestor) Placeholder(colorFor func() string) model.Photo {
	return model.Photo{
		ID:     fmt.Sprintf("photo-%d", ing.nextMilli()),
		Label:  defaultLabel,
		Color:  colorFor(),
		Status: model.PhotoReady,
	}
}

// Prepare reserves one pending slot per file, in selection order.
// Slot ids carry the batch timestamp and the selection index.
func (ing *Ingestor) Prepare(files []File, colorFor func() string) []Task {
	ms := ing.nextMilli()

	tasks := make([]Task, 0, len(files))
	for i, f := range files {
		label := f.Name
		if label == "" {
			label = defaultLabel
		}
		tasks = append(tasks, Task{
			Photo: model.Photo{
				ID:     fmt.Sprintf("photo-%d-%d", ms, i),
				Label:  label,
				Color:  colorFor(),
				Status: model.PhotoPending,
			},
			File: f,
		})
	}
	return tasks
}

// Run decodes every task concurrently. resolve is called exactly once
// per task with the slot's photo id and either a preview URI or an
// error; calls may arrive in any order. The returned channel closes
// when the whole batch has resolved.
func (ing *Ingestor) Run(ctx context.Context, tasks []Task, resolve func(photoID, previewURI string, err error)) <-chan struct{} {
	done := make(chan struct{})

	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()

			uri, err := ing.decode(ctx, t.File)
			if err != nil {
				ing.log.Debug("photo decode failed",
					zap.String("photo_id", t.Photo.ID),
					zap.String("file", t.File.Name),
					zap.Error(err))
			}
			resolve(t.Photo.ID, uri, err)
		}(t)
	}

	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// decodeDataURI reads the file and encodes it as a displayable
// data URI. Non-image content is rejected.
func decodeDataURI(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Name, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("reading %s: empty file", f.Name)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("decoding %s: not an image (%s)", f.Name, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// internal/app/features/stores/photos.go
package stores

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// photoMaxWidth is the resize target; uploads wider than this are scaled
// down, narrower ones are stored as-is.
const photoMaxWidth = 800

// photoMaxBytes caps the multipart memory for a store photo upload.
const photoMaxBytes = 10 << 20 // 10 MB

// ErrBadPhotoType is returned when an upload is not an image we can store.
var ErrBadPhotoType = errors.New("that file type isn't allowed")

var photoExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// PhotoStore saves uploaded store photos to a directory served at URLBase.
type PhotoStore struct {
	Dir     string
	URLBase string
}

func NewPhotoStore(dir, urlBase string) *PhotoStore {
	return &PhotoStore{Dir: dir, URLBase: urlBase}
}

// URL returns the public URL for a stored photo filename, or the
// placeholder image when the store has no photo.
func (p *PhotoStore) URL(filename string) string {
	if filename == "" {
		return "/static/img/store.svg"
	}
	return p.URLBase + "/" + filename
}

// Save reads the uploaded photo from the request, checks its type by
// sniffing content rather than trusting the extension, resizes it down to
// photoMaxWidth, and writes it under a fresh UUID name. Returns the
// stored filename, or "" when the form had no photo.
func (p *PhotoStore) Save(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()
	if header.Size == 0 {
		return "", nil
	}

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && n == 0 {
		return "", err
	}
	ext, ok := photoExts[http.DetectContentType(head[:n])]
	if !ok {
		return "", ErrBadPhotoType
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrBadPhotoType
	}
	if img.Bounds().Dx() > photoMaxWidth {
		img = imaging.Resize(img, photoMaxWidth, 0, imaging.Lanczos)
	}

	name := uuid.NewString() + ext
	if err := imaging.Save(img, filepath.Join(p.Dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

package server

import (
	"io"
	"net/http"

	"github.com/playperu/geohunt/internal/geohunt"
	"github.com/playperu/geohunt/internal/progress"
)

const maxPhotoBytes = 10 << 20

type PhotoResponse struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

func handleAttachPhoto(hunt *progress.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes+(1<<20))
		if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}

		f, hdr, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "image is required")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "reading image failed")
			return
		}
		if len(data) > maxPhotoBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "image too large")
			return
		}

		ct := hdr.Header.Get("Content-Type")
		if ct == "" {
			ct = http.DetectContentType(data)
		}

		if err := hunt.AttachPhoto(geohunt.Photo{Filename: hdr.Filename, ContentType: ct, Data: data}); err != nil {
			writeHuntError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, PhotoResponse{Filename: hdr.Filename, Size: len(data)})
	}
}

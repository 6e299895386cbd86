package server

import (
	"net/http"
	"os"

	"go.uber.org/zap"
)

// backgroundAsset is the page background image, read as raw bytes once at
// startup. Pure presentation; it carries no data semantics.
type backgroundAsset struct {
	bytes       []byte
	contentType string
}

// loadBackground reads the image file. Returns nil (endpoint disabled) when
// no path is configured or the file cannot be read.
func loadBackground(path string) *backgroundAsset {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		zap.L().Warn("background image unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	return &backgroundAsset{
		bytes:       data,
		contentType: http.DetectContentType(data),
	}
}

func (s *Server) handleBackground(w http.ResponseWriter, _ *http.Request) {
	if s.background == nil {
		writeError(w, http.StatusNotFound, "no background image configured")
		return
	}
	w.Header().Set("Content-Type", s.background.contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.background.bytes)
}

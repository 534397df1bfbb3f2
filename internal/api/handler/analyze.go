package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/mvasanth/equipscan/internal/api/response"
	"github.com/mvasanth/equipscan/internal/export"
	"github.com/mvasanth/equipscan/internal/imaging"
	"github.com/mvasanth/equipscan/internal/ocr"
	"github.com/mvasanth/equipscan/pkg/models"
)

// Analyzer defines the interface the handler depends on.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) (*models.AnalysisResult, error)
}

// NewAnalyzeHandler returns an http.HandlerFunc for POST /api/v1/analyze.
// The image arrives either as the "image" part of a multipart form or as the
// raw request body. ?format=text returns a downloadable plain-text report
// instead of the JSON envelope.
func NewAnalyzeHandler(svc Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		image, err := readImage(r)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
			return
		}

		result, err := svc.Analyze(r.Context(), image)
		if err != nil {
			writeAnalyzeError(w, err)
			return
		}

		if strings.EqualFold(r.URL.Query().Get("format"), "text") {
			response.Text(w, export.TextReport(result))
			return
		}

		response.JSON(w, result)
	}
}

// readImage extracts the upload from a multipart form or the raw body.
func readImage(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, imaging.MaxImageBytes+1)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		file, _, err := r.FormFile("image")
		if err != nil {
			return nil, errors.New("multipart form must include an image field")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.New("reading image upload failed")
		}
		return data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.New("reading request body failed")
	}
	return data, nil
}

// writeAnalyzeError maps pipeline errors to HTTP status codes.
func writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, imaging.ErrEmptyImage):
		response.Error(w, http.StatusBadRequest, "INVALID_IMAGE",
			"No image data provided", nil)
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		response.Error(w, http.StatusBadRequest, "INVALID_IMAGE",
			"Image format not supported; use JPEG, PNG or GIF", nil)
	case errors.Is(err, imaging.ErrImageTooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE",
			"Image exceeds the upload size limit", nil)
	case errors.Is(err, ocr.ErrVisionTimeout):
		response.Error(w, http.StatusGatewayTimeout, "OCR_TIMEOUT",
			"Text extraction took too long and was cancelled", nil)
	case errors.Is(err, ocr.ErrVisionUnreachable), errors.Is(err, ocr.ErrVisionAPIError):
		response.Error(w, http.StatusBadGateway, "OCR_UNAVAILABLE",
			"The text extraction service is not available", nil)
	default:
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"An unexpected error occurred", nil)
	}
}

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"upload-ai-api/internal/apperrors"
	"upload-ai-api/internal/server"
)

// maxUploadBytes caps a single uploaded file at 25 MiB. The body-size
// middleware allows slightly more to leave room for multipart framing, so
// the file part itself is capped here.
const maxUploadBytes = 25 << 20

var errFileTooLarge = errors.New("uploaded file exceeds the maximum allowed size")

// cappedReader reads at most its limit from the file part and reports an
// error once a transfer goes past it, so oversized uploads abort mid-stream
// instead of being buffered or stored.
type cappedReader struct {
	r         io.Reader
	remaining int64 // limit + 1; reaching 0 means the limit was crossed
	tripped   bool
}

func newCappedReader(r io.Reader, limit int64) *cappedReader {
	return &cappedReader{r: r, remaining: limit + 1}
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining <= 0 {
		c.tripped = true
		return 0, errFileTooLarge
	}
	if int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining <= 0 {
		c.tripped = true
		return n, errFileTooLarge
	}
	return n, err
}

// UploadVideo handles POST /videos. The multipart body is consumed part by
// part so file bytes stream to storage without being materialized in memory.
// The first file-typed part is ingested regardless of its field name;
// clients conventionally send it as "file".
func (a *API) UploadVideo(c *gin.Context) {
	reader, err := c.Request.MultipartReader()
	if err != nil {
		server.RespondWithError(c, apperrors.MissingInput())
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			server.RespondWithError(c, uploadReadError(err))
			return
		}
		if part.FileName() == "" {
			continue
		}

		capped := newCappedReader(part, maxUploadBytes)
		video, err := a.pipeline.Ingest(c.Request.Context(), part.FileName(), capped)
		part.Close()
		if capped.tripped {
			server.RespondWithError(c, fileTooLarge(maxUploadBytes))
			return
		}
		if err != nil {
			server.RespondWithError(c, uploadReadError(err))
			return
		}

		server.RespondOK(c, gin.H{"video": video})
		return
	}

	server.RespondWithError(c, apperrors.MissingInput())
}

// uploadReadError maps size-limit overruns (the whole-body middleware limit
// or the per-file cap) to 413; everything else passes through for the
// standard AppError dispatch.
func uploadReadError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fileTooLarge(maxErr.Limit)
	}
	if errors.Is(err, errFileTooLarge) {
		return fileTooLarge(maxUploadBytes)
	}
	return err
}

func fileTooLarge(limit int64) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidInput,
		"Uploaded file exceeds the maximum allowed size.",
		http.StatusRequestEntityTooLarge).
		WithDetail("limit_bytes", limit)
}

type transcriptionRequest struct {
	Prompt string `json:"prompt"`
}

// CreateTranscription handles POST /videos/:videoId/transcription.
func (a *API) CreateTranscription(c *gin.Context) {
	videoID := c.Param("videoId")

	var req transcriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON").WithCause(err))
		return
	}

	text, err := a.pipeline.Transcribe(c.Request.Context(), videoID, req.Prompt)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{"transcription": text})
}

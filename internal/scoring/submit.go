package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
)

// SubmitGuess sends one guess as a single multipart PUT and returns the
// service's message. A non-success status yields a *RejectedError; a
// transport failure yields a *NetworkError. The call is never retried.
// s.IdempotencyKey is sent as is; without one each send gets a fresh key.
func (c *Client) SubmitGuess(ctx context.Context, s Submission) (string, error) {
	body, contentType, err := encodeSubmission(s)
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/api/v1/submitGuess", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	key := s.IdempotencyKey
	if key == "" {
		key = req.Header.Get("X-Request-ID")
	}
	req.Header.Set("Idempotency-Key", key)

	resp, err := c.do("submit guess", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	msg := readServiceMessage(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg == "" {
			msg = fallbackRejection
		}
		c.logger.Info("guess rejected",
			"hunt_id", s.HuntID,
			"puzzle_id", s.PuzzleID,
			"status", resp.StatusCode,
			"message", msg,
		)
		return "", &RejectedError{Status: resp.StatusCode, Message: msg}
	}
	return msg, nil
}

func encodeSubmission(s Submission) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	loc, err := json.Marshal(guessedLocation{Coordinates: s.Guess.Coordinates()})
	if err != nil {
		return nil, "", fmt.Errorf("encoding guessed location: %w", err)
	}

	fields := []struct{ name, value string }{
		{"huntId", s.HuntID},
		{"userId", s.UserID},
		{"puzzleId", s.PuzzleID},
		{"guessedLocation", string(loc)},
		{"timeTaken", strconv.FormatInt(s.TimeTaken, 10)},
		{"hintsOpened", strconv.Itoa(s.HintsOpened)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", f.name, err)
		}
	}

	if s.Photo != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, photoFilename(s.Photo.Filename)))
		ct := s.Photo.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating image part: %w", err)
		}
		if _, err := part.Write(s.Photo.Data); err != nil {
			return nil, "", fmt.Errorf("writing image part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

func photoFilename(name string) string {
	if name == "" {
		return "photo"
	}
	return name
}

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/adamchlebek/RL-Dash/internal/replay"
)

const msgNoFile = "No replay file received"

var errNoFile = errors.New("no replay file received")

// readUpload decodes the first part of a multipart upload, whatever its
// field name.
func readUpload(r *http.Request) (*replay.Replay, int64, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, 0, errNoFile
	}
	part, err := mr.NextPart()
	if err == io.EOF {
		return nil, 0, errNoFile
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read upload: %w", err)
	}
	defer part.Close()

	counter := &countingReader{r: part}
	data, err := replay.ReadAll(counter)
	if err != nil {
		return nil, counter.n, err
	}
	rep, err := replay.Decode(data)
	return rep, counter.n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// uploadStatus maps an upload error to its HTTP status.
func uploadStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, errNoFile):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

package fileservice

import (
	"bytes"
	"errors"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen mirrors mimetype's own detection window: the first 3072 bytes
// decide the content type.
const sniffLen = 3072

const fallbackContentType = "application/octet-stream"

// Sniff classifies body by content and returns the detected type plus a
// reader that replays the consumed head before the rest. Sniffing is
// metadata only - it never rejects a file; unrecognizable bytes come back
// as application/octet-stream.
func Sniff(body io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}
	head = head[:n]

	contentType := fallbackContentType
	if n > 0 {
		contentType = mimetype.Detect(head).String()
	}
	return contentType, io.MultiReader(bytes.NewReader(head), body), nil
}

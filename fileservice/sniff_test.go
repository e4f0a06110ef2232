package fileservice

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func TestSniff_DetectsPNG(t *testing.T) {
	req := require.New(t)

	contentType, replay, err := Sniff(bytes.NewReader(pngHeader))
	req.NoError(err)
	req.Equal("image/png", contentType)

	// The consumed head must be replayed in full.
	out, err := io.ReadAll(replay)
	req.NoError(err)
	req.Equal(pngHeader, out)
}

func TestSniff_DetectsText(t *testing.T) {
	req := require.New(t)

	contentType, replay, err := Sniff(strings.NewReader("hello world"))
	req.NoError(err)
	req.True(strings.HasPrefix(contentType, "text/plain"), "got %s", contentType)

	out, err := io.ReadAll(replay)
	req.NoError(err)
	req.Equal("hello world", string(out))
}

func TestSniff_EmptyBody(t *testing.T) {
	req := require.New(t)

	contentType, replay, err := Sniff(bytes.NewReader(nil))
	req.NoError(err)
	req.Equal("application/octet-stream", contentType)

	out, err := io.ReadAll(replay)
	req.NoError(err)
	req.Empty(out)
}

func TestSniff_ReplaysBodyLargerThanHead(t *testing.T) {
	req := require.New(t)

	// Given: a body well past the sniffing window
	content := append([]byte{}, pngHeader...)
	content = append(content, bytes.Repeat([]byte{0x42}, 4*sniffLen)...)

	// When: sniffing
	contentType, replay, err := Sniff(bytes.NewReader(content))
	req.NoError(err)
	req.Equal("image/png", contentType)

	// Then: head and tail are recombined without loss
	out, err := io.ReadAll(replay)
	req.NoError(err)
	req.Equal(content, out)
}

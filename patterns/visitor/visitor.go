// Package visitor adds operations to a closed set of types without editing
// those types. The cast is a message's attachments; operations arrive later
// (total size, a manifest) and each lands in its own visitor.
package visitor

import "time"

// Attachment is the element side: one Accept, nothing else. The concrete
// types never learn what visitors exist.
type Attachment interface {
	Accept(v Visitor)
}

// Visitor has one method per concrete attachment. Adding an attachment type
// breaks every visitor at compile time, which is the deal this pattern asks
// you to take: a closed type set in exchange for an open operation set.
type Visitor interface {
	VisitTextNote(n *TextNote)
	VisitImageFile(f *ImageFile)
	VisitAudioClip(c *AudioClip)
}

// TextNote is an inline text attachment.
type TextNote struct {
	Title string
	Body  string
}

func (n *TextNote) Accept(v Visitor) { v.VisitTextNote(n) }

// ImageFile is a stored image.
type ImageFile struct {
	Name   string
	Width  int
	Height int
	Bytes  int64
}

func (f *ImageFile) Accept(v Visitor) { v.VisitImageFile(f) }

// AudioClip is a voice message; its size on disk is derived, not stored.
type AudioClip struct {
	Name     string
	Duration time.Duration
	Bitrate  int // kbit/s
}

func (c *AudioClip) Accept(v Visitor) { v.VisitAudioClip(c) }

package visitor

import "fmt"

// SizeVisitor totals the bytes a batch of attachments occupies. Notes count
// their body, images know their size, audio derives it from duration and
// bitrate.
type SizeVisitor struct {
	Total int64
}

func (v *SizeVisitor) VisitTextNote(n *TextNote) {
	v.Total += int64(len(n.Body))
}

func (v *SizeVisitor) VisitImageFile(f *ImageFile) {
	v.Total += f.Bytes
}

func (v *SizeVisitor) VisitAudioClip(c *AudioClip) {
	v.Total += int64(c.Duration.Seconds() * float64(c.Bitrate) * 1000 / 8)
}

// ManifestVisitor renders one listing line per attachment.
type ManifestVisitor struct {
	lines []string
}

func (v *ManifestVisitor) VisitTextNote(n *TextNote) {
	v.lines = append(v.lines, fmt.Sprintf("note   %q (%d bytes)", n.Title, len(n.Body)))
}

func (v *ManifestVisitor) VisitImageFile(f *ImageFile) {
	v.lines = append(v.lines, fmt.Sprintf("image  %s (%dx%d, %d bytes)", f.Name, f.Width, f.Height, f.Bytes))
}

func (v *ManifestVisitor) VisitAudioClip(c *AudioClip) {
	v.lines = append(v.lines, fmt.Sprintf("audio  %s (%s at %d kbit/s)", c.Name, c.Duration, c.Bitrate))
}

func (v *ManifestVisitor) Lines() []string {
	return v.lines
}

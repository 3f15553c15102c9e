package models

// ItemKind identifies the vendor item type on the canvas.
// The set is closed: extraction switches exhaustively over content kinds and
// everything else is filtered out before the pipeline sees it.
type ItemKind string

const (
	ItemKindFrame      ItemKind = "frame"
	ItemKindStickyNote ItemKind = "sticky_note"
	ItemKindText       ItemKind = "text"
	ItemKindShape      ItemKind = "shape"
	ItemKindCard       ItemKind = "card"
	ItemKindImage      ItemKind = "image"
	ItemKindDocument   ItemKind = "document"
	ItemKindEmbed      ItemKind = "embed"
	ItemKindPreview    ItemKind = "preview"
)

// HasContent reports whether items of this kind carry extractable text.
func (k ItemKind) HasContent() bool {
	switch k {
	case ItemKindStickyNote, ItemKindText, ItemKindShape, ItemKindCard:
		return true
	default:
		return false
	}
}

// NoteColor is the canonical four-color palette every vendor fill color
// normalizes into.
type NoteColor string

const (
	ColorYellow NoteColor = "yellow"
	ColorBlue   NoteColor = "blue"
	ColorGreen  NoteColor = "green"
	ColorPink   NoteColor = "pink"
)

// Frame is a rectangular grouping region on the canvas. Coordinates are
// absolute board coordinates of the top-left corner. Width and height are
// always positive; items with non-positive geometry are rejected at
// ingestion and never become frames.
type Frame struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point (x, y) lies within the frame rectangle,
// bounds inclusive on all four edges.
func (f *Frame) Contains(x, y float64) bool {
	return f.X <= x && x <= f.X+f.Width && f.Y <= y && y <= f.Y+f.Height
}

// ContentItem is the canonical form of a sticky note, text box, shape or
// card after extraction: plain text, absolute coordinates, normalized color.
// Immutable once produced by the ingestion pass.
type ContentItem struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Color  NoteColor `json:"color"`
}

// Center returns the geometric center of the item, used for frame
// containment tests.
func (c *ContentItem) Center() (float64, float64) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// Board is the aggregate root produced by one ingestion pass. Every content
// item's coordinates are expressed in the same absolute coordinate space as
// the frames, regardless of how the vendor represented them.
type Board struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Frames []Frame       `json:"frames"`
	Items  []ContentItem `json:"content_items"`
}

// FrameNotes pairs a frame with the content items whose centers fall inside
// it. Derived, never persisted.
type FrameNotes struct {
	Frame     Frame         `json:"frame"`
	Notes     []ContentItem `json:"notes"`
	NoteCount int           `json:"note_count"`
}

// MappedBoard is the frame→content view of a board: one entry per frame in
// board order, each item assigned to at most one frame.
type MappedBoard struct {
	BoardID   string       `json:"board_id"`
	BoardName string       `json:"board_name"`
	Frames    []FrameNotes `json:"frames_with_notes"`
}

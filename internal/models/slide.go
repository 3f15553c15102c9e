package models

import "time"

// Slide is the summarization output for one frame: a headline and bullet
// points. Produced either by the provider (validated) or by the degradation
// path (frame title + raw notes).
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// SummarizeRequest is the input for summarizing a single frame's notes.
type SummarizeRequest struct {
	FrameTitle string   `json:"frame_title"`
	Notes      []string `json:"notes"`
}

// FrameSlide tags a slide with the frame it was generated from.
// Degraded carries the internal outcome; Empty marks frames that had no
// mapped notes and therefore produced the fixed placeholder slide without a
// provider call.
type FrameSlide struct {
	FrameID    string   `json:"frame_id"`
	FrameTitle string   `json:"frame_title"`
	Slide      Slide    `json:"slide"`
	RawNotes   []string `json:"raw_notes"`
	Empty      bool     `json:"empty"`
	Degraded   bool     `json:"degraded"`
}

// Deck is the ordered set of slides generated for a whole board, one
// FrameSlide per frame in board order.
type Deck struct {
	ID        string       `json:"id"`
	BoardID   string       `json:"board_id"`
	BoardName string       `json:"board_name"`
	Slides    []FrameSlide `json:"slides"`
	CreatedAt time.Time    `json:"created_at"`
}

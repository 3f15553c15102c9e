package models

// Item is the raw canvas item record as returned by the vendor listing API.
// Positions are vendor-space: absolute for frames and free items, relative to
// the parent frame's top-left corner for items nested under a frame.
type Item struct {
	ID       string     `json:"id"`
	Type     ItemKind   `json:"type"`
	Position Position   `json:"position"`
	Geometry Geometry   `json:"geometry"`
	Style    ItemStyle  `json:"style"`
	Data     ItemData   `json:"data"`
	Parent   *ParentRef `json:"parent,omitempty"`
}

// Position is an (x, y) coordinate pair on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry is the bounding size of an item.
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ItemStyle carries the subset of vendor styling the pipeline consumes.
type ItemStyle struct {
	FillColor string `json:"fillColor"`
}

// ItemData carries the text payload fields. Which fields are populated
// depends on the item kind: sticky notes, text and shapes use Content,
// cards use Title and Description, frames use Title.
type ItemData struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// ParentRef references the frame an item is nested under, if any.
type ParentRef struct {
	ID string `json:"id"`
}

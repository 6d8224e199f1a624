package gcalc

// Renderer is a drawing backend. Coordinates are in canvas pixels with the origin in the top-left corner and y pointing down.
type Renderer interface {
	Size() (float64, float64)
	RenderPath(path *Path, style Style)
	RenderOval(center Point, rx, ry float64, style Style)
	RenderRect(rect Rect, style Style)
	RenderText(pos Point, text string, style Style)
}

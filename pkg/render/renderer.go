package render

import "context"

// Renderer converts an emission-event stream into output bytes (a rich-text
// document, a paginated PDF, ...). Implementations must be safe for
// concurrent use: every Render call builds its own output buffer.
type Renderer interface {
	Name() string
	ContentType() string
	FileExtension() string
	Render(ctx context.Context, events []Event) ([]byte, error)
}

package style

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/go-drift/floating/pkg/rendering"
)

// ParseColor converts a stylesheet color string into a rendering.Color.
// Accepted forms: hex ("#rgb" or "#rrggbb", always opaque) and SVG 1.1
// color names ("white", "steelblue", ...). Matching is case-insensitive.
func ParseColor(s string) (rendering.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return rendering.RGB(r, g, b), nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return rendering.RGBA(c.R, c.G, c.B, c.A), nil
	}

	return 0, fmt.Errorf("unknown color %q", s)
}

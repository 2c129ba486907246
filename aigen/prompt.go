package aigen

import (
	"fmt"
	"strings"

	"github.com/ByLCY/designkit/layout"
)

const responseShape = `{
  "design": {
    "layout": "description of the overall layout",
    "elements": [
      {
        "type": "container | text | button",
        "properties": {
          "x": number, "y": number, "width": number, "height": number,
          "fill": "hex color", "content": "text", "fontSize": number, "fontWeight": "normal | bold"
        }
      }
    ],
    "style": {
      "colors": ["list of hex colors"],
      "typography": {
        "headings": "font family",
        "body": "font family"
      },
      "spacing": {
        "padding": number,
        "gap": number
      }
    }
  }
}`

// BuildPrompt 生成发送给模型的提示词。
func BuildPrompt(intent layout.Intent, frame layout.Frame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed design specification for a %s with a %s style and %s color scheme.\n",
		intent.Type, intent.Style, intent.ColorScheme)
	if d := strings.TrimSpace(intent.Description); d != "" {
		fmt.Fprintf(&b, "Additional requirements: %s\n", d)
	}
	fmt.Fprintf(&b, "The canvas is %g x %g pixels with the origin at the top-left corner.\n\n", frame.Width, frame.Height)
	b.WriteString("The design should include:\n")
	b.WriteString("1. Layout structure and hierarchy\n2. Color palette\n3. Typography choices\n")
	b.WriteString("4. Component specifications\n5. Spacing and alignment rules\n\n")
	b.WriteString("Format the response as a JSON object with the following structure:\n")
	b.WriteString(responseShape)
	return b.String()
}

package history

import (
	"fmt"
	"strings"
)

// Render concatenates the selected turns into the text block injected as
// the context system turn. The template is the only bit-exact wire
// contract owned by this core. An empty input renders to an empty string,
// in which case the context turn is simply omitted by the caller.
func Render(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}
	lines := make([]string, len(turns))
	for i, t := range turns {
		lines[i] = fmt.Sprintf("Message from %s: %s", t.Role, t.Content)
	}
	return strings.Join(lines, "\n")
}

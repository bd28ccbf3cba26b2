package sink

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// indent matches the four-space layout downstream importers were written against.
const indent = "    "

// jsonAPI sorts map keys for stable output and leaves characters such as
// '<' in "<UDIM>" paths unescaped.
var jsonAPI = sonic.Config{
	SortMapKeys:    true,
	ValidateString: true,
}.Froze()

// Encode renders v as pretty-printed JSON with a trailing newline.
func Encode(v any) ([]byte, error) {
	data, err := jsonAPI.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(data, '\n'), nil
}

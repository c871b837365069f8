package ai

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	errNoClient      = errors.New("no AI client configured")
	errEmptyResponse = errors.New("empty response from model")
)

var (
	rxFencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	rxFenced     = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// ExtractJSON pulls the best JSON candidate out of a model reply: a
// ```json fenced block, then any fenced block, then the outermost brace
// span. Returns false when nothing brace-shaped is present.
func ExtractJSON(text string) ([]byte, bool) {
	if m := rxFencedJSON.FindStringSubmatch(text); m != nil {
		return []byte(strings.TrimSpace(m[1])), true
	}
	if m := rxFenced.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if strings.HasPrefix(candidate, "{") {
			return []byte(candidate), true
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return []byte(text[start : end+1]), true
	}
	return nil, false
}

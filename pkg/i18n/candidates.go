package i18n

import (
	"fmt"

	"tableflip.dev/onthisday/pkg/choice"
)

// Candidates decodes the candidate list stored at keyPath. A missing or
// non-list value is an empty list.
func (t *Translator) Candidates(keyPath string) ([]choice.Candidate, error) {
	list, err := choice.Decode(t.Translate(keyPath))
	if err != nil {
		return nil, fmt.Errorf("i18n: %s: %w", keyPath, err)
	}
	return list, nil
}

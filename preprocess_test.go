package svgraster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess_SequentialApplication(t *testing.T) {
	// Each pair is applied to the result of the previous one, so the B
	// produced by the first pair is rewritten by the second.
	result := Preprocess("A B", []Replacement{
		{Search: "A", Replace: "B"},
		{Search: "B", Replace: "C"},
	})
	assert.Equal(t, "C C", result)
}

func TestPreprocess_ReplacesAllOccurrences(t *testing.T) {
	result := Preprocess("x {{v}} y {{v}}", []Replacement{
		{Search: "{{v}}", Replace: "10"},
	})
	assert.Equal(t, "x 10 y 10", result)
}

func TestPreprocess_NoReplacements(t *testing.T) {
	assert.Equal(t, "<svg/>", Preprocess("<svg/>", nil))
}

func TestPreprocess_EmptySearch(t *testing.T) {
	// Empty search follows strings.ReplaceAll semantics.
	assert.Equal(t, "-a-b-", Preprocess("ab", []Replacement{{Search: "", Replace: "-"}}))
}

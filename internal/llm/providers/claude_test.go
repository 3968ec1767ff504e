package providers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const enhancedYAML = `name: Jane Doe
email: jane@example.com
phone: "+15551234567"
sections:
  summary:
    - Impact-driven engineer with a decade of distributed-systems work.
`

func TestDecodeEnhancedCVPlainYAML(t *testing.T) {
	cv, err := decodeEnhancedCV(enhancedYAML)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", cv.Name)
	require.Len(t, cv.Sections.Summary, 1)
}

func TestDecodeEnhancedCVYAMLFence(t *testing.T) {
	cv, err := decodeEnhancedCV("```yaml\n" + enhancedYAML + "```")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", cv.Email)
}

func TestDecodeEnhancedCVBareFence(t *testing.T) {
	cv, err := decodeEnhancedCV("```\n" + enhancedYAML + "```")
	require.NoError(t, err)
	require.Equal(t, "+15551234567", cv.Phone)
}

func TestDecodeEnhancedCVInvalidYAML(t *testing.T) {
	_, err := decodeEnhancedCV("Sure! Here is your improved resume:\nname: [")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not valid YAML")
}

func TestDecodeEnhancedCVLostIdentityFields(t *testing.T) {
	_, err := decodeEnhancedCV("sections:\n  summary:\n    - Great engineer.\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "lost required fields")
}

func TestBuildEnhancementPromptEmbedsDocument(t *testing.T) {
	cp := &ClaudeProvider{}
	prompt := cp.buildEnhancementPrompt(enhancedYAML)
	require.Contains(t, prompt, "Jane Doe")
	require.Contains(t, prompt, "IMPORTANT RULES")
}

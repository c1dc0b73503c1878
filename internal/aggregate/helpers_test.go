package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
)

// frame builds a loaded, repaired frame from header and tab-joined
// rows, the same way the pipeline receives one.
func frame(t *testing.T, header string, rows ...string) *dataset.Frame {
	t.Helper()
	content := header
	if len(rows) > 0 {
		content += "\n" + strings.Join(rows, "\n")
	}
	f, err := dataset.Read(strings.NewReader(content))
	require.NoError(t, err)
	return f
}

func row(fields ...string) string {
	return strings.Join(fields, "\t")
}

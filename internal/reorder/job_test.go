package reorder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omsops/reorder-batch/internal/reorder"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJob(t *testing.T) {
	t.Run("valid job", func(t *testing.T) {
		path := writeJob(t, `{"orderNumber":"PLT-1001","refundId":"R-1","skus":["SKU-X","SKU-Y"]}`)

		job, err := reorder.ReadJob(path)
		require.NoError(t, err)

		assert.Equal(t, "PLT-1001", job.OrderNumber)
		assert.Equal(t, "R-1", job.RefundID)
		assert.Equal(t, []string{"SKU-X", "SKU-Y"}, job.Skus)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeJob(t, `{not json`)

		job, err := reorder.ReadJob(path)
		assert.Error(t, err)
		assert.Nil(t, job)
	})

	t.Run("missing fields", func(t *testing.T) {
		for name, content := range map[string]string{
			"no order number": `{"refundId":"R-1","skus":["SKU-X"]}`,
			"no refund id":    `{"orderNumber":"PLT-1001","skus":["SKU-X"]}`,
			"no skus":         `{"orderNumber":"PLT-1001","refundId":"R-1"}`,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := reorder.ReadJob(writeJob(t, content))
				assert.Error(t, err)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reorder.ReadJob(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}

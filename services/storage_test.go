package services

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalArchive(t *testing.T) {
	archive := NewLocalArchive(t.TempDir())
	ctx := context.Background()

	t.Run("Save And Open Round Trip", func(t *testing.T) {
		require.NoError(t, archive.Save(ctx, "chase_ab12cd34.pdf", "application/pdf", []byte("%PDF-1.4 body")))

		file, contentType, err := archive.Open(ctx, "chase_ab12cd34.pdf")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "application/pdf", contentType)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 body", string(data))
	})

	t.Run("Content Type Follows The Extension", func(t *testing.T) {
		require.NoError(t, archive.Save(ctx, "chase_ab12cd34.xlsx", "application/octet-stream", []byte("PK")))
		file, contentType, err := archive.Open(ctx, "chase_ab12cd34.xlsx")
		require.NoError(t, err)
		file.Close()
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	})

	t.Run("Nested Keys Create Directories", func(t *testing.T) {
		require.NoError(t, archive.Save(ctx, "2025/08/pnc_1.pdf", "application/pdf", []byte("%PDF")))
		file, _, err := archive.Open(ctx, "2025/08/pnc_1.pdf")
		require.NoError(t, err)
		file.Close()
	})

	t.Run("Delete Is Idempotent", func(t *testing.T) {
		require.NoError(t, archive.Save(ctx, "gone.pdf", "application/pdf", []byte("%PDF")))
		require.NoError(t, archive.Delete(ctx, "gone.pdf"))
		require.NoError(t, archive.Delete(ctx, "gone.pdf"))

		_, _, err := archive.Open(ctx, "gone.pdf")
		assert.Error(t, err)
	})

	t.Run("Always Configured", func(t *testing.T) {
		assert.True(t, archive.IsConfigured())
	})
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "512 B", SizeLabel(512))
	assert.Equal(t, "1.5 KB", SizeLabel(1536))
	assert.Equal(t, "2.0 MB", SizeLabel(2<<20))
}

package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/maxrects/internal/model"
)

func TestExportDXF_Outlines(t *testing.T) {
	result, containers := buildTestResult()
	path := filepath.Join(t.TempDir(), "layout.dxf")

	require.NoError(t, ExportDXF(path, result, containers))

	d, err := dxf.Open(path)
	require.NoError(t, err)

	lines := 0
	for _, e := range d.Entities() {
		if _, ok := e.(*entity.Line); ok {
			lines++
		}
	}
	// Four edges per container and per placed item
	assert.Equal(t, 4*(len(containers)+len(result.Placed)), lines)
}

func TestExportDXF_NoContainers(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), model.Result{}, nil)
	assert.ErrorIs(t, err, errNoContainers)
}

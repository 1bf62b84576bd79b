// SPDX-License-Identifier: MIT

package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/internal/metrics"
)

func TestRecorder_Observe(t *testing.T) {
	rec := metrics.New()
	rec.Observe(metrics.Run{Cells: 64, Alignments: []int{8, 8, 8}, Duration: time.Millisecond})
	rec.Observe(metrics.Run{Cells: 4, Alignments: []int{2}, Limited: true, Matrix: true})

	n, err := testutil.GatherAndCount(rec.Gatherer(),
		"nwalign_alignments_total", "nwalign_matrix_cells_total", "nwalign_alignment_limit_hits_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	families, err := rec.Gatherer().Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				values[mf.GetName()] += c.GetValue()
			}
		}
	}
	assert.Equal(t, 4.0, values["nwalign_alignments_total"])
	assert.Equal(t, 68.0, values["nwalign_matrix_cells_total"])
	assert.Equal(t, 1.0, values["nwalign_alignment_limit_hits_total"])
	assert.Equal(t, 2.0, values["nwalign_runs_total"])
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.New()
	rec.Observe(metrics.Run{Cells: 9, Alignments: []int{3}})

	path := filepath.Join(t.TempDir(), "nwalign.prom")
	require.NoError(t, rec.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "nwalign_matrix_cells_total 9")
	assert.Contains(t, string(raw), `nwalign_runs_total{scoring="constant"} 1`)
}

package hashmap_test

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	hashmap "github.com/kobeHub/Hash-map"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	tbl := newTable(t, hashmap.WithObserver(hashmap.NewMetrics(reg)))

	for i := 0; i < 200; i++ {
		require.NoError(t, tbl.Insert(fmt.Sprintf("key-%d", i), "v"))
	}
	for i := 0; i < 200; i++ {
		_, ok := tbl.Search(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
	}
	require.NoError(t, tbl.Insert("key-0", "updated"))
	_, ok := tbl.Search("absent")
	require.False(t, ok)
	for i := 0; i < 195; i++ {
		require.True(t, tbl.Delete(fmt.Sprintf("key-%d", i)))
	}

	st := tbl.Stats()
	require.Greater(t, st.Grows, 0)
	require.Greater(t, st.Shrinks, 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	var probeSamples uint64
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case mf.GetName() == "hashmap_operations_total":
				labels := make(map[string]string)
				for _, l := range m.GetLabel() {
					labels[l.GetName()] = l.GetValue()
				}
				values[labels["op"]+"/"+labels["outcome"]] = m.GetCounter().GetValue()
			case mf.GetName() == "hashmap_resizes_total":
				values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			case mf.GetName() == "hashmap_probe_length":
				probeSamples += m.GetHistogram().GetSampleCount()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}

	require.Equal(t, float64(st.Grows), values["grow"])
	require.Equal(t, float64(st.Shrinks), values["shrink"])
	require.Equal(t, float64(st.Capacity), values["hashmap_capacity_slots"])
	require.Equal(t, float64(st.Count), values["hashmap_entries"])
	require.Equal(t, uint64(201+201+195), probeSamples)

	require.Equal(t, 200.0, values["insert/added"])
	require.Equal(t, 1.0, values["insert/updated"])
	require.Equal(t, 200.0, values["search/hit"])
	require.Equal(t, 1.0, values["search/miss"])
	require.Equal(t, 195.0, values["delete/hit"])
	require.NotContains(t, values, "delete/miss")

	series, err := testutil.GatherAndCount(reg, "hashmap_probe_length")
	require.NoError(t, err)
	require.Equal(t, 3, series)
	series, err = testutil.GatherAndCount(reg, "hashmap_operations_total")
	require.NoError(t, err)
	require.Equal(t, 5, series)
}

package navmetrics_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/lestrrat-go/navi"
	"github.com/lestrrat-go/navi/navmetrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := navmetrics.New(navmetrics.WithRegistry(reg), navmetrics.WithNamespace("test"))

	e, err := navi.New(
		navi.WithID("main"),
		navi.WithViewLookup(navi.NewViewSet("home", "user")),
		navi.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		navi.WithDiagnostics(collector),
		navi.WithRoutes(
			navi.Route("/").View("home"),
			navi.Route("user/[id]").View("user"),
			navi.Route("ghost").View("ghost"),
		),
	)
	require.NoError(t, err)

	require.NoError(t, e.Activate("/"))
	require.NoError(t, e.Activate("user/1"))
	require.NoError(t, e.Activate("user/2"))
	require.Error(t, e.Activate("missing"))
	require.Error(t, e.Activate("ghost"))

	count, err := testutil.GatherAndCount(reg,
		"test_activations_total",
		"test_unmatched_total",
		"test_view_missing_total",
		"test_routes_registered",
	)
	require.NoError(t, err)
	require.Equal(t, 5, count, "two activation series and one series per other metric")

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range metricFamilies {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			}
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "," + lp.GetName() + "=" + lp.GetValue()
			}
			values[key] = v
		}
	}

	require.Equal(t, 1.0, values["test_activations_total,id=main,route=/"])
	require.Equal(t, 2.0, values["test_activations_total,id=main,route=user/[id]"])
	require.Equal(t, 1.0, values["test_unmatched_total,id=main"])
	require.Equal(t, 1.0, values["test_view_missing_total,id=main,view=ghost"])
	require.Equal(t, 3.0, values["test_routes_registered,id=main"])
}

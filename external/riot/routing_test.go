package riot

import (
	"errors"
	"testing"

	"github.com/riskibarqy/match-ingestion/internal/usecase"
)

func TestResolveRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		region string
		want   Route
	}{
		{region: "na", want: Route{Platform: "na1", Cluster: "americas"}},
		{region: "NA1", want: Route{Platform: "na1", Cluster: "americas"}},
		{region: "EUW1_6874512", want: Route{Platform: "euw1", Cluster: "europe"}},
		{region: " kr ", want: Route{Platform: "kr", Cluster: "asia"}},
		{region: "oce", want: Route{Platform: "oc1", Cluster: "sea"}},
	}

	for _, tc := range tests {
		got, err := ResolveRoute(tc.region)
		if err != nil {
			t.Fatalf("ResolveRoute(%q) error: %v", tc.region, err)
		}
		if got != tc.want {
			t.Fatalf("ResolveRoute(%q): expected %+v, got=%+v", tc.region, tc.want, got)
		}
	}
}

func TestResolveRoute_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ResolveRoute("moon1")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

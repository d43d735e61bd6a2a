package riot

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/match-ingestion/internal/usecase"
)

// Route pairs the platform host (league, spectator) with the regional cluster (match, account).
type Route struct {
	Platform string
	Cluster  string
}

var routes = map[string]Route{
	"na1":  {Platform: "na1", Cluster: "americas"},
	"br1":  {Platform: "br1", Cluster: "americas"},
	"la1":  {Platform: "la1", Cluster: "americas"},
	"la2":  {Platform: "la2", Cluster: "americas"},
	"euw1": {Platform: "euw1", Cluster: "europe"},
	"eun1": {Platform: "eun1", Cluster: "europe"},
	"tr1":  {Platform: "tr1", Cluster: "europe"},
	"ru":   {Platform: "ru", Cluster: "europe"},
	"me1":  {Platform: "me1", Cluster: "europe"},
	"kr":   {Platform: "kr", Cluster: "asia"},
	"jp1":  {Platform: "jp1", Cluster: "asia"},
	"oc1":  {Platform: "oc1", Cluster: "sea"},
	"ph2":  {Platform: "ph2", Cluster: "sea"},
	"sg2":  {Platform: "sg2", Cluster: "sea"},
	"th2":  {Platform: "th2", Cluster: "sea"},
	"tw2":  {Platform: "tw2", Cluster: "sea"},
	"vn2":  {Platform: "vn2", Cluster: "sea"},
}

var regionAliases = map[string]string{
	"na":   "na1",
	"br":   "br1",
	"lan":  "la1",
	"las":  "la2",
	"euw":  "euw1",
	"eune": "eun1",
	"tr":   "tr1",
	"me":   "me1",
	"jp":   "jp1",
	"oce":  "oc1",
	"ph":   "ph2",
	"sg":   "sg2",
	"th":   "th2",
	"tw":   "tw2",
	"vn":   "vn2",
}

// ResolveRoute accepts a short region ("na"), a platform id ("NA1") or a match id prefix ("NA1_123").
func ResolveRoute(region string) (Route, error) {
	key := strings.ToLower(strings.TrimSpace(region))
	if idx := strings.IndexByte(key, '_'); idx > 0 {
		key = key[:idx]
	}
	if alias, ok := regionAliases[key]; ok {
		key = alias
	}
	route, ok := routes[key]
	if !ok {
		return Route{}, fmt.Errorf("%w: unsupported region %q", usecase.ErrInvalidInput, region)
	}
	return route, nil
}

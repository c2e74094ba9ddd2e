package region

import (
	"fmt"
	"strings"
)

// Platform is a Riot platform shard such as na1 or euw1.
type Platform string

// Routing is a Riot regional routing value used for account and match endpoints.
type Routing string

const (
	RoutingAmericas Routing = "americas"
	RoutingEurope   Routing = "europe"
	RoutingAsia     Routing = "asia"
	RoutingSEA      Routing = "sea"
)

var routingByPlatform = map[Platform]Routing{
	"br1":  RoutingAmericas,
	"la1":  RoutingAmericas,
	"la2":  RoutingAmericas,
	"na1":  RoutingAmericas,
	"eun1": RoutingEurope,
	"euw1": RoutingEurope,
	"tr1":  RoutingEurope,
	"ru":   RoutingEurope,
	"jp1":  RoutingAsia,
	"kr":   RoutingAsia,
	"sg2":  RoutingAsia,
	"tw2":  RoutingAsia,
	"vn2":  RoutingAsia,
	"oc1":  RoutingSEA,
}

var allRoutings = map[Routing]struct{}{
	RoutingAmericas: {},
	RoutingEurope:   {},
	RoutingAsia:     {},
	RoutingSEA:      {},
}

// RoutingFor resolves the regional routing host for a platform shard.
func RoutingFor(p Platform) (Routing, bool) {
	routing, ok := routingByPlatform[Platform(strings.ToLower(strings.TrimSpace(string(p))))]
	return routing, ok
}

func ParsePlatform(v string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(v)))
	if _, ok := routingByPlatform[p]; !ok {
		return "", fmt.Errorf("unknown platform region: %s", v)
	}
	return p, nil
}

func ParseRouting(v string) (Routing, error) {
	r := Routing(strings.ToLower(strings.TrimSpace(v)))
	if _, ok := allRoutings[r]; !ok {
		return "", fmt.Errorf("unknown routing region: %s", v)
	}
	return r, nil
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import "context"

// LivenessProber reports whether a host answers on the network. It never
// fails: every problem counts as unreachable.
type LivenessProber interface {
	Probe(ctx context.Context, host string) bool
}

// GeoLocator resolves a source address to a lowercase two-letter country code.
type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (string, error)
}

package network

import (
	"context"
	"net"

	"golang.org/x/net/icmp"
)

// SetLookupForTest replaces the resolver used by p.
func (p *Prober) SetLookupForTest(fn func(ctx context.Context, host string) ([]net.IPAddr, error)) {
	p.lookup = fn
}

// DisableICMPForTest makes every ICMP socket open fail.
func (p *Prober) DisableICMPForTest() {
	p.listenICMP = func(string, string) (*icmp.PacketConn, error) {
		return nil, &net.OpError{Op: "listen", Net: "udp4", Err: errICMPUnavailable}
	}
}

// Mode exposes the resolved probe mode.
func (p *Prober) Mode() ProbeMode {
	return p.mode
}

package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/idna"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"guestbook/pkg/logger"
)

// ProbeMode selects how liveness is checked.
type ProbeMode string

const (
	// ProbeICMP sends an echo request and falls back to TCP when the
	// process may not open ICMP sockets.
	ProbeICMP ProbeMode = "icmp"
	// ProbeTCP only attempts TCP connects.
	ProbeTCP ProbeMode = "tcp"
)

const (
	protocolICMP     = 1
	protocolIPv6ICMP = 58

	defaultProbeTimeout = 3 * time.Second
)

var defaultProbePorts = []int{80, 443}

var errICMPUnavailable = errors.New("icmp unavailable")

// ProbeConfig configures a Prober.
type ProbeConfig struct {
	Mode    ProbeMode
	Timeout time.Duration
	Ports   []int
}

// Prober reports whether a host answers on the network.
type Prober struct {
	mode    ProbeMode
	timeout time.Duration
	ports   []int
	seq     atomic.Uint32

	lookup     func(ctx context.Context, host string) ([]net.IPAddr, error)
	listenICMP func(network, address string) (*icmp.PacketConn, error)
	dialer     *net.Dialer
}

// NewProber creates a Prober. Zero values in cfg fall back to ICMP mode, a
// three second timeout and ports 80 and 443.
func NewProber(cfg ProbeConfig) *Prober {
	mode := cfg.Mode
	if mode != ProbeTCP {
		mode = ProbeICMP
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	ports := cfg.Ports
	if len(ports) == 0 {
		ports = defaultProbePorts
	}
	return &Prober{
		mode:       mode,
		timeout:    timeout,
		ports:      ports,
		lookup:     net.DefaultResolver.LookupIPAddr,
		listenICMP: icmp.ListenPacket,
		dialer:     &net.Dialer{},
	}
}

// Probe reports whether host is reachable within the configured timeout.
// Resolution failures, timeouts and refusals all count as unreachable.
func (p *Prober) Probe(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ip, err := p.resolve(ctx, host)
	if err != nil {
		logger.Debug("probe resolve failed",
			"module", "network",
			"action", "probe",
			"resource", "host",
			"result", "failed",
			"host", host,
			"error", err,
		)
		return false
	}

	if p.mode == ProbeICMP {
		alive, err := p.ping(ctx, ip)
		if err == nil {
			return alive
		}
		logger.Debug("icmp unavailable, falling back to tcp",
			"module", "network",
			"action", "probe",
			"resource", "host",
			"result", "fallback",
			"error", err,
		)
	}
	return p.connect(ctx, ip)
}

func (p *Prober) resolve(ctx context.Context, host string) (net.IP, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, errors.New("empty host")
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return nil, fmt.Errorf("idna: %w", err)
	}
	addrs, err := p.lookup(ctx, ascii)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no addresses for %s", ascii)
	}
	for _, addr := range addrs {
		if addr.IP.To4() != nil {
			return addr.IP, nil
		}
	}
	return addrs[0].IP, nil
}

// ping sends one echo request over an unprivileged datagram socket. It only
// returns an error when the socket cannot be opened.
func (p *Prober) ping(ctx context.Context, ip net.IP) (bool, error) {
	network, address, proto := "udp4", "0.0.0.0", protocolICMP
	var reqType, replyType icmp.Type = ipv4.ICMPTypeEcho, ipv4.ICMPTypeEchoReply
	if ip.To4() == nil {
		network, address, proto = "udp6", "::", protocolIPv6ICMP
		reqType, replyType = ipv6.ICMPTypeEchoRequest, ipv6.ICMPTypeEchoReply
	}

	conn, err := p.listenICMP(network, address)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errICMPUnavailable, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	seq := int(p.seq.Add(1) & 0xffff)
	msg := icmp.Message{
		Type: reqType,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  seq,
			Data: []byte("guestbook"),
		},
	}
	payload, err := msg.Marshal(nil)
	if err != nil {
		return false, nil
	}
	if _, err := conn.WriteTo(payload, &net.UDPAddr{IP: ip}); err != nil {
		return false, nil
	}

	buf := make([]byte, 1500)
	for {
		if ctx.Err() != nil {
			return false, nil
		}
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return false, nil
		}
		reply, err := icmp.ParseMessage(proto, buf[:n])
		if err != nil || reply.Type != replyType {
			continue
		}
		// The kernel rewrites the identifier on datagram sockets, so only
		// the sequence number is matched.
		if echo, ok := reply.Body.(*icmp.Echo); ok && echo.Seq == seq {
			return true, nil
		}
	}
}

func (p *Prober) connect(ctx context.Context, ip net.IP) bool {
	for _, port := range p.ports {
		conn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(ip.String(), strconv.Itoa(port)))
		if err == nil {
			_ = conn.Close()
			return true
		}
		if ctx.Err() != nil {
			return false
		}
	}
	return false
}

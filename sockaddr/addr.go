// File: sockaddr/addr.go
// Author: solarobot <solarobot@gmail.com>
//
// Immutable endpoint value consumed by the socket layer: an address
// family plus either IP and port or a local filesystem path. Parsing
// and rendering live here; conversion to the OS representation lives
// in the per-platform files.

package sockaddr

import (
	"fmt"
	"net"
	"strconv"
)

// Family identifies the address family of an Addr.
type Family int

const (
	Unset Family = iota
	IPv4
	IPv6
	Local // unix domain socket path
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	case Local:
		return "local"
	default:
		return "unset"
	}
}

// Addr is an immutable socket endpoint.
type Addr struct {
	family Family
	ip     net.IP
	port   int
	zone   string
	path   string
}

// NewIP builds an IP endpoint. The family is derived from the IP form:
// a four-byte (or four-byte-mappable) address is IPv4, anything else
// IPv6.
func NewIP(ip net.IP, port int) Addr {
	if v4 := ip.To4(); v4 != nil {
		return Addr{family: IPv4, ip: v4, port: port}
	}
	return Addr{family: IPv6, ip: ip, port: port}
}

// NewIPZone builds an IPv6 endpoint with an explicit scope zone.
func NewIPZone(ip net.IP, port int, zone string) Addr {
	a := NewIP(ip, port)
	if a.family == IPv6 {
		a.zone = zone
	}
	return a
}

// NewLocal builds a unix domain socket endpoint from a filesystem path.
func NewLocal(path string) Addr {
	return Addr{family: Local, path: path}
}

// Parse builds an Addr from a numeric "host:port" string. No name
// resolution is performed; the host part must be a literal IP.
func Parse(s string) (Addr, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return Addr{}, fmt.Errorf("parse address %q: %w", s, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return Addr{}, fmt.Errorf("parse address %q: bad port %q", s, portStr)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return Addr{}, fmt.Errorf("parse address %q: bad IP %q", s, host)
	}
	return NewIP(ip, port), nil
}

// Family returns the address family.
func (a Addr) Family() Family { return a.family }

// IP returns the IP of an IPv4/IPv6 endpoint, nil otherwise.
func (a Addr) IP() net.IP { return a.ip }

// Port returns the port of an IPv4/IPv6 endpoint.
func (a Addr) Port() int { return a.port }

// Zone returns the IPv6 scope zone, empty when not set.
func (a Addr) Zone() string { return a.zone }

// Path returns the filesystem path of a local endpoint.
func (a Addr) Path() string { return a.path }

// IsZero reports whether a is the zero Addr.
func (a Addr) IsZero() bool { return a.family == Unset }

// String renders the endpoint in "host:port" or path form.
func (a Addr) String() string {
	switch a.family {
	case IPv4:
		return net.JoinHostPort(a.ip.String(), strconv.Itoa(a.port))
	case IPv6:
		host := a.ip.String()
		if a.zone != "" {
			host += "%" + a.zone
		}
		return net.JoinHostPort(host, strconv.Itoa(a.port))
	case Local:
		return a.path
	default:
		return "<unset>"
	}
}

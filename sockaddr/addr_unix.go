// File: sockaddr/addr_unix.go
//go:build unix

// Author: solarobot <solarobot@gmail.com>
//
// Conversion between Addr and the raw OS sockaddr representation used
// by the BSD socket syscalls.

package sockaddr

import (
	"net"

	"golang.org/x/sys/unix"
)

// AF returns the numeric OS address family constant for a.
func (a Addr) AF() int {
	switch a.family {
	case IPv4:
		return unix.AF_INET
	case IPv6:
		return unix.AF_INET6
	case Local:
		return unix.AF_UNIX
	default:
		return unix.AF_UNSPEC
	}
}

// Sockaddr converts a into the form the socket syscalls consume.
func (a Addr) Sockaddr() (unix.Sockaddr, error) {
	switch a.family {
	case IPv4:
		sa := &unix.SockaddrInet4{Port: a.port}
		copy(sa.Addr[:], a.ip.To4())
		return sa, nil
	case IPv6:
		sa := &unix.SockaddrInet6{Port: a.port, ZoneId: zoneID(a.zone)}
		copy(sa.Addr[:], a.ip.To16())
		return sa, nil
	case Local:
		return &unix.SockaddrUnix{Name: a.path}, nil
	default:
		return nil, errUnsetAddr
	}
}

// FromSockaddr builds an Addr from OS-filled address storage, e.g. the
// peer produced by accept or recvfrom. The second return is false for
// families this library does not model.
func FromSockaddr(sa unix.Sockaddr) (Addr, bool) {
	switch v := sa.(type) {
	case *unix.SockaddrInet4:
		ip := make(net.IP, net.IPv4len)
		copy(ip, v.Addr[:])
		return Addr{family: IPv4, ip: ip, port: v.Port}, true
	case *unix.SockaddrInet6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, v.Addr[:])
		return Addr{family: IPv6, ip: ip, port: v.Port, zone: zoneName(v.ZoneId)}, true
	case *unix.SockaddrUnix:
		return Addr{family: Local, path: v.Name}, true
	default:
		return Addr{}, false
	}
}

func zoneID(zone string) uint32 {
	if zone == "" {
		return 0
	}
	ifi, err := net.InterfaceByName(zone)
	if err != nil {
		return 0
	}
	return uint32(ifi.Index)
}

func zoneName(id uint32) string {
	if id == 0 {
		return ""
	}
	ifi, err := net.InterfaceByIndex(int(id))
	if err != nil {
		return ""
	}
	return ifi.Name
}

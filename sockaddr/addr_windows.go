// File: sockaddr/addr_windows.go
//go:build windows

// Author: solarobot <solarobot@gmail.com>
//
// Conversion between Addr and the Winsock sockaddr representation.

package sockaddr

import (
	"net"
	"strconv"

	"golang.org/x/sys/windows"
)

// AF returns the numeric OS address family constant for a.
func (a Addr) AF() int {
	switch a.family {
	case IPv4:
		return windows.AF_INET
	case IPv6:
		return windows.AF_INET6
	case Local:
		return windows.AF_UNIX
	default:
		return windows.AF_UNSPEC
	}
}

// Sockaddr converts a into the form the socket syscalls consume.
func (a Addr) Sockaddr() (windows.Sockaddr, error) {
	switch a.family {
	case IPv4:
		sa := &windows.SockaddrInet4{Port: a.port}
		copy(sa.Addr[:], a.ip.To4())
		return sa, nil
	case IPv6:
		sa := &windows.SockaddrInet6{Port: a.port, ZoneId: zoneID(a.zone)}
		copy(sa.Addr[:], a.ip.To16())
		return sa, nil
	case Local:
		return &windows.SockaddrUnix{Name: a.path}, nil
	default:
		return nil, errUnsetAddr
	}
}

// FromSockaddr builds an Addr from OS-filled address storage, e.g. the
// peer produced by accept or recvfrom. The second return is false for
// families this library does not model.
func FromSockaddr(sa windows.Sockaddr) (Addr, bool) {
	switch v := sa.(type) {
	case *windows.SockaddrInet4:
		ip := make(net.IP, net.IPv4len)
		copy(ip, v.Addr[:])
		return Addr{family: IPv4, ip: ip, port: v.Port}, true
	case *windows.SockaddrInet6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, v.Addr[:])
		return Addr{family: IPv6, ip: ip, port: v.Port, zone: zoneName(v.ZoneId)}, true
	case *windows.SockaddrUnix:
		return Addr{family: Local, path: v.Name}, true
	default:
		return Addr{}, false
	}
}

func zoneID(zone string) uint32 {
	if zone == "" {
		return 0
	}
	if n, err := strconv.Atoi(zone); err == nil {
		return uint32(n)
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
		return strconv.Itoa(int(id))
	}
	return ifi.Name
}

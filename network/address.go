package network

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// LocalIP returns the address of the interface used to reach the internet.
// No packet is sent: connecting a UDP socket only selects a route.
// It falls back to the loopback address when no route exists.
func LocalIP() net.IP {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return net.IPv4(127, 0, 0, 1)
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return net.IPv4(127, 0, 0, 1)
	}
	return addr.IP
}

// SubnetOf returns the IP network (CIDR) of the interface owning ip.
func SubnetOf(ip net.IP) (net.IPNet, error) {
	if ip == nil || ip.IsUnspecified() {
		return net.IPNet{}, fmt.Errorf("unspecified IP %v", ip)
	}
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}
	for _, ifi := range ifaces {
		addrs, _ := ifi.Addrs()
		for _, a := range addrs {
			var ipnet *net.IPNet
			switch v := a.(type) {
			case *net.IPNet:
				ipnet = v
			case *net.IPAddr:
				ipnet = &net.IPNet{IP: v.IP, Mask: v.IP.DefaultMask()}
			default:
				continue
			}
			if ipnet == nil {
				continue
			}
			if ipnet.Contains(ip) || ipnet.IP.Equal(ip) {
				return *ipnet, nil
			}
		}
	}
	return net.IPNet{}, fmt.Errorf("no interface found for ip %v", ip)
}

// BroadcastAddress returns the directed broadcast address of an IPv4 network.
func BroadcastAddress(n net.IPNet) (net.IP, error) {
	ip := n.IP.To4()
	if ip == nil {
		return nil, fmt.Errorf("%v is not an IPv4 network", n.String())
	}
	mask := n.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}
	if len(mask) != net.IPv4len {
		return nil, fmt.Errorf("invalid mask for %v", n.String())
	}
	broadcast := make(net.IP, net.IPv4len)
	for i := range broadcast {
		broadcast[i] = ip[i] | ^mask[i]
	}
	return broadcast, nil
}

// GuessIPAddress takes a base IP address and a partial address string,
// and fills in the missing octets from the base address.
//
// Examples:
//   - GuessIPAddress(192.168.0.1, "42") → 192.168.0.42
//   - GuessIPAddress(192.168.0.1, "15.42") → 192.168.15.42
//   - GuessIPAddress(192.168.0.1, "") → 192.168.0.1
func GuessIPAddress(baseAddress net.IP, partialAddr string) (net.IP, error) {
	base := baseAddress.To4()
	if base == nil {
		return nil, fmt.Errorf("base address %v is not IPv4", baseAddress)
	}
	ip := make(net.IP, len(base))
	copy(ip, base)
	octets := strings.Split(partialAddr, ".")
	if len(octets) == 1 && octets[0] == "" {
		return ip, nil
	}
	if len(octets) > len(ip) {
		return nil, fmt.Errorf("too many octets in %q", partialAddr)
	}
	for i := 0; i < len(octets); i++ {
		octet, err := strconv.ParseUint(octets[i], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid octet %q: %w", octets[i], err)
		}
		ip[len(ip)-len(octets)+i] = byte(octet)
	}
	return ip, nil
}

// SplitHostPort splits an address into host and port, using defaultPort if no port is specified.
func SplitHostPort(addr string, defaultPort int) (string, string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		addr = addr + ":" + strconv.Itoa(defaultPort)
		host, port, err = net.SplitHostPort(addr)
		if err != nil {
			return "", "", err
		}
	}
	return host, port, nil
}

// ResolvePartial completes a possibly partial "host[:port]" address against base.
func ResolvePartial(base net.IP, addr string, defaultPort int) (string, error) {
	host, port, err := SplitHostPort(addr, defaultPort)
	if err != nil {
		return "", err
	}
	ip, err := GuessIPAddress(base, host)
	if err != nil {
		return "", err
	}
	return net.JoinHostPort(ip.String(), port), nil
}

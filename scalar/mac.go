package scalar

import (
	"net"
	"strings"
)

// BroadcastMAC is the all-ones hardware address.
const BroadcastMAC = "FF:FF:FF:FF:FF:FF"

// UnicastMAC returns an upper-case colon separated address with the group bit cleared.
func UnicastMAC() string {
	return mac(0x00)
}

// MulticastMAC returns an address with the group bit set.
func MulticastMAC() string {
	return mac(0x01)
}

func mac(group byte) string {
	addr := make(net.HardwareAddr, 6)
	for i := range addr {
		addr[i] = octet()
	}
	addr[0] = addr[0]&0xfe | group

	return strings.ToUpper(addr.String())
}

package scalar

import (
	"fmt"
	"net/netip"
)

// Class is a classful IPv4 address class.
type Class int

const (
	ClassA Class = iota
	ClassB
	ClassC
	ClassD
	ClassE
)

// PrivateClass selects one of the RFC 1918 private ranges.
type PrivateClass int

const (
	PrivateClassA PrivateClass = iota
	PrivateClassB
	PrivateClassC
)

// Mask is a classful network mask.
type Mask int

const (
	MaskClassA Mask = iota
	MaskClassB
	MaskClassC
)

func (m Mask) Bits() int {
	switch m {
	case MaskClassA:
		return 8
	case MaskClassB:
		return 16
	default:
		return 24
	}
}

type IPv6Type int

const (
	GlobalUnicast IPv6Type = iota
	LinkLocal
	Multicast
)

func (c Class) mask() Mask {
	if c > ClassC {
		return MaskClassC
	}

	return Mask(c)
}

func octet() byte { return byte(Rand().UintN(256)) }

// IPv4 returns a public address of a random class.
func IPv4() string {
	return ipv4(Class(Rand().IntN(int(ClassE) + 1))).String()
}

func IPv4OfClass(c Class) (string, error) {
	if c < ClassA || c > ClassE {
		return "", fmt.Errorf("%w: unknown IPv4 class %d", ErrInvalidArgument, c)
	}

	return ipv4(c).String(), nil
}

func IPv4WithMask() string {
	c := Class(Rand().IntN(int(ClassE) + 1))

	return prefixString(ipv4(c), c.mask().Bits())
}

// IPv4OfClassWithMask returns an address of class c. The mask is only honoured for classes D and E,
// which have no classful mask of their own.
func IPv4OfClassWithMask(c Class, m Mask) (string, error) {
	if c < ClassA || c > ClassE {
		return "", fmt.Errorf("%w: unknown IPv4 class %d", ErrInvalidArgument, c)
	}

	if m < MaskClassA || m > MaskClassC {
		return "", fmt.Errorf("%w: unknown mask %d", ErrInvalidArgument, m)
	}

	if c <= ClassC {
		m = c.mask()
	}

	return prefixString(ipv4(c), m.Bits()), nil
}

func PrivateIPv4() string {
	return privateIPv4(PrivateClass(Rand().IntN(int(PrivateClassC) + 1))).String()
}

func PrivateIPv4OfClass(c PrivateClass) (string, error) {
	if c < PrivateClassA || c > PrivateClassC {
		return "", fmt.Errorf("%w: unknown private class %d", ErrInvalidArgument, c)
	}

	return privateIPv4(c).String(), nil
}

func PrivateIPv4WithMask() string {
	c := PrivateClass(Rand().IntN(int(PrivateClassC) + 1))

	return prefixString(privateIPv4(c), Mask(c).Bits())
}

func PrivateIPv4OfClassWithMask(c PrivateClass) (string, error) {
	if c < PrivateClassA || c > PrivateClassC {
		return "", fmt.Errorf("%w: unknown private class %d", ErrInvalidArgument, c)
	}

	return prefixString(privateIPv4(c), Mask(c).Bits()), nil
}

func ipv4(c Class) netip.Addr {
	b := [4]byte{0, octet(), octet(), octet()}

	switch c {
	case ClassA:
		// 10/8 is private
		b[0] = byte(intn(0, 127))
		if b[0] >= 10 {
			b[0]++
		}
	case ClassB:
		b[0] = byte(intn(128, 192))
		// 172.16/12 is private
		for b[0] == 172 && b[1] >= 16 && b[1] <= 31 {
			b[1] = octet()
		}
	case ClassC:
		b[0] = byte(intn(192, 224))
		// 192.168/16 is private
		for b[0] == 192 && b[1] == 168 {
			b[1] = octet()
		}
	case ClassD:
		b[0] = byte(intn(224, 240))
	default:
		b[0] = byte(intn(240, 256))
	}

	return netip.AddrFrom4(b)
}

func privateIPv4(c PrivateClass) netip.Addr {
	switch c {
	case PrivateClassA:
		return netip.AddrFrom4([4]byte{10, octet(), octet(), octet()})
	case PrivateClassB:
		return netip.AddrFrom4([4]byte{172, byte(intn(16, 32)), octet(), octet()})
	default:
		return netip.AddrFrom4([4]byte{192, 168, octet(), octet()})
	}
}

// IPv6 returns a fully expanded address of a random type.
func IPv6() string {
	return ipv6(IPv6Type(Rand().IntN(int(Multicast) + 1))).StringExpanded()
}

func IPv6OfType(t IPv6Type) (string, error) {
	if t < GlobalUnicast || t > Multicast {
		return "", fmt.Errorf("%w: unknown IPv6 type %d", ErrInvalidArgument, t)
	}

	return ipv6(t).StringExpanded(), nil
}

func IPv6WithPrefix() string {
	t := IPv6Type(Rand().IntN(int(Multicast) + 1))

	return ipv6(t).StringExpanded() + fmt.Sprintf("/%d", intn(1, 129))
}

// IPv6OfTypeWithPrefix returns an address of type t followed by /prefix, where prefix is in [1, 128].
func IPv6OfTypeWithPrefix(t IPv6Type, prefix int) (string, error) {
	if prefix < 1 || prefix > 128 {
		return "", fmt.Errorf("%w: prefix length %d is outside [1, 128]", ErrInvalidRange, prefix)
	}

	addr, err := IPv6OfType(t)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%d", addr, prefix), nil
}

func ipv6(t IPv6Type) netip.Addr {
	var first int
	switch t {
	case GlobalUnicast:
		first = intn(0x2000, 0x4000)
	case LinkLocal:
		first = intn(0xfe80, 0xfec0)
	default:
		first = intn(0xff00, 0x10000)
	}

	var b [16]byte
	b[0], b[1] = byte(first>>8), byte(first)
	for i := 2; i < len(b); i++ {
		b[i] = octet()
	}

	return netip.AddrFrom16(b)
}

// prefixString formats addr/bits, keeping the host bits.
func prefixString(addr netip.Addr, bits int) string {
	return netip.PrefixFrom(addr, bits).String()
}

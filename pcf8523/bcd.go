package pcf8523

// ToBCD packs a value 0-99 into a BCD byte, tens in the high nibble. Larger values give garbage.
func ToBCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}

// FromBCD unpacks a BCD byte.
func FromBCD(b uint8) int {
	return int(b>>4)*10 + int(b&0x0F)
}

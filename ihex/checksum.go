package ihex

// checksum computes the 8-bit checksum for an Intel HEX record.
// Sums the byte count, both address bytes, the type code and every data
// byte, then takes the 2's complement truncated to 8 bits.
func checksum(count byte, address uint16, typ RecordType, data []byte) byte {
	sum := count + byte(address>>8) + byte(address) + byte(typ)
	for _, b := range data {
		sum += b
	}
	return ^sum + 1 // 2's complement
}

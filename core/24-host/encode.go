package host

import "fmt"

// Encode produces the byte value compared against a membership proof: the
// Go-syntax (%#v) representation of v. Every handler calls it for the values
// it proves, and no ValidationContext carries a codec of its own, so these
// bytes are not a protobuf encoding and a proof must commit to exactly this
// representation. The same Go value always yields the same bytes.
func Encode(v interface{}) []byte {
	return []byte(fmt.Sprintf("%#v", v))
}

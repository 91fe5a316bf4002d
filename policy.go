package activestep

import "fmt"

// EncodePolicy selects which registered names Encode emits for a set.
type EncodePolicy int

const (
	EncodeSubsumed     EncodePolicy = iota // every name whose bits are all set
	EncodeMostSpecific                     // fully set composites replace their members
)

// ParseEncodePolicy maps "subsumed" or "specific" to a policy.
func ParseEncodePolicy(s string) (EncodePolicy, error) {
	switch s {
	case "", "subsumed":
		return EncodeSubsumed, nil
	case "specific", "most-specific":
		return EncodeMostSpecific, nil
	}
	return 0, fmt.Errorf("unknown encode policy %q", s)
}

func (p EncodePolicy) String() string {
	switch p {
	case EncodeSubsumed:
		return "subsumed"
	case EncodeMostSpecific:
		return "specific"
	}
	return fmt.Sprintf("EncodePolicy(%d)", int(p))
}

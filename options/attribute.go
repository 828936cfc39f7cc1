package options

import (
	"fmt"
	"math/bits"
	"strings"
)

// AttributeEnum is a set of declared attributes refining how a value is laid out natively.
type AttributeEnum int

const (
	AttributeSigned   AttributeEnum = 1 << iota // force a signed native integer
	AttributeUnsigned                           // force an unsigned native integer
	AttributeInt8                               // native storage is 8 bits wide
	AttributeInt16                              // native storage is 16 bits wide
	AttributeInt32                              // native storage is 32 bits wide
	AttributeInt64                              // native storage is 64 bits wide
	AttributeLong                               // native storage is a C long: 32 or 64 bits, per platform
	AttributeNoTrace                            // never print the debug listing of the generated accessor

	AttributeAll  AttributeEnum = (1 << iota) - 1 // all attributes combined
	AttributeNone AttributeEnum = 0               // no attributes declared

	// AttributeWidths groups the attributes selecting a native width.
	AttributeWidths = AttributeInt8 | AttributeInt16 | AttributeInt32 | AttributeInt64 | AttributeLong
	// AttributeSignedness groups the attributes selecting a native sign.
	AttributeSignedness = AttributeSigned | AttributeUnsigned
)

var attributeNames = []struct {
	attr  AttributeEnum
	names []string
}{
	{AttributeSigned, []string{"signed"}},
	{AttributeUnsigned, []string{"unsigned"}},
	{AttributeInt8, []string{"int8", "char"}},
	{AttributeInt16, []string{"int16", "short"}},
	{AttributeInt32, []string{"int32", "int"}},
	{AttributeInt64, []string{"int64", "longlong"}},
	{AttributeLong, []string{"long"}},
	{AttributeNoTrace, []string{"notrace"}},
}

// Has reports whether every attribute of other is set.
func (a AttributeEnum) Has(other AttributeEnum) bool {
	return a&other == other
}

// Width returns the single width attribute of a, zero if none is set
// and false if more than one is.
func (a AttributeEnum) Width() (AttributeEnum, bool) {
	w := a & AttributeWidths
	return w, bits.OnesCount(uint(w)) <= 1
}

// String lists the attribute names in declaration order, "none" for the empty set.
func (a AttributeEnum) String() string {
	if a == AttributeNone {
		return "none"
	}

	var parts []string
	for _, n := range attributeNames {
		if a&n.attr != 0 {
			parts = append(parts, n.names[0])
		}
	}

	if rest := a &^ AttributeAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("AttributeEnum(%#x)", int(rest)))
	}

	return strings.Join(parts, "|")
}

// ParseAttribute returns the attribute for a name such as "unsigned" or "long".
func ParseAttribute(name string) (AttributeEnum, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "_t")
	key = strings.ReplaceAll(key, " ", "")

	for _, n := range attributeNames {
		for _, alias := range n.names {
			if alias == key {
				return n.attr, nil
			}
		}
	}

	return AttributeNone, fmt.Errorf("unknown attribute %q", name)
}

// AttributeNames returns every accepted attribute name, aliases included.
func AttributeNames() []string {
	var names []string
	for _, n := range attributeNames {
		names = append(names, n.names...)
	}

	return names
}

// ParseAttributes folds a list of attribute names into a set.
func ParseAttributes(names []string) (AttributeEnum, error) {
	var set AttributeEnum
	for _, name := range names {
		attr, err := ParseAttribute(name)
		if err != nil {
			return AttributeNone, err
		}

		set |= attr
	}

	return set, nil
}

package primitive

import "fmt"

// Pointer is a native address carried as a value. It is the boxed form of
// KindAddress for callers that want more than a bare uintptr.
type Pointer uintptr

// IsNull reports whether p is the null address.
func (p Pointer) IsNull() bool { return p == 0 }

// Memory returns raw memory starting at p.
func (p Pointer) Memory() Memory { return Direct(p) }

// Add returns p displaced by offset bytes.
func (p Pointer) Add(offset int64) Pointer { return Pointer(int64(p) + offset) }

func (p Pointer) String() string {
	if p.IsNull() {
		return "NULL"
	}

	return fmt.Sprintf("%#x", uintptr(p))
}

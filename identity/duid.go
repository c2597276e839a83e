package identity

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

var (
	// idReader seeds the DUID prefix. Tests replace it to get a known
	// starting point.
	idReader io.Reader = cryptorand.Reader

	duidOnce sync.Once
	duidSeq  uint32
)

const (
	// the first octet of the prefix is always zero, leaving 23 usable bits
	duidPrefixMask = 0x7fffff

	// DUIDMACOffset is the position of the MAC address in a generated DUID.
	DUIDMACOffset = len("00:00:00:00:")
)

func seedDUID() {
	var p [4]byte
	if _, err := io.ReadFull(idReader, p[:]); err != nil {
		panic(fmt.Errorf("failed to read random bytes: %v", err))
	}
	atomic.StoreUint32(&duidSeq, binary.BigEndian.Uint32(p[:])&duidPrefixMask)
}

// NewDUID returns a DHCPv6 client identifier for mac. Calls with the same
// MAC return distinct identifiers.
func NewDUID(mac string) string {
	duidOnce.Do(seedDUID)
	n := atomic.AddUint32(&duidSeq, 1) & duidPrefixMask
	return fmt.Sprintf("00:%02x:%02x:%02x:%s", byte(n>>16), byte(n>>8), byte(n), mac)
}

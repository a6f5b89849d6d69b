package connectivity

import "sync"

// Process-wide default (n,k), frozen at first read. A host may call
// SetGlobalDefault any number of times before the first read (via
// GlobalDefault or NewDefault; Background and Neighborhood derive from
// their argument and never read it); after that first read, further writes
// are a usage error (ErrGlobalDefaultFrozen), matching spec §5: the
// convenience is process-wide configuration that must be frozen before any
// engine is constructed.
var (
	globalMu     sync.Mutex
	globalN      = 2
	globalK      = 0
	globalFrozen = false
)

// SetGlobalDefault configures the process-wide default connectivity. It
// fails with ErrGlobalDefaultFrozen once GlobalDefault has been read, and
// with ErrInvalidDescriptor for an out-of-range (n,k).
func SetGlobalDefault(n, k int) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalFrozen {
		return ErrGlobalDefaultFrozen
	}
	if err := validate(n, k); err != nil {
		return err
	}
	globalN, globalK = n, k
	return nil
}

// GlobalDefault returns the current process-wide default (n,k) and freezes
// it against further SetGlobalDefault calls.
func GlobalDefault() (n, k int) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalFrozen = true
	return globalN, globalK
}

// resetGlobalDefaultForTest restores the unfrozen, built-in default. Only
// called from this package's own tests to keep them independent of
// execution order.
func resetGlobalDefaultForTest() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalN, globalK = 2, 0
	globalFrozen = false
}

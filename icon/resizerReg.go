package icon

import (
	"sync"

	"github.com/srlehn/iconresize/internal/util"
)

var (
	resizersMu         sync.RWMutex
	resizersRegistered = make(map[string]Resizer)
)

// RegisterResizer makes rsz available under name.
// A later registration under the same name replaces the earlier one.
func RegisterResizer(name string, rsz Resizer) {
	if len(name) == 0 || rsz == nil {
		return
	}
	resizersMu.Lock()
	defer resizersMu.Unlock()
	resizersRegistered[name] = rsz
}

// GetRegResizerByName returns registered resizers
func GetRegResizerByName(name string) Resizer {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	return resizersRegistered[name]
}

// RegisteredResizerNames returns the sorted names of all registered resizers.
func RegisteredResizerNames() []string {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	return util.MapsKeysSorted(resizersRegistered)
}

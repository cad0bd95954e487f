package icon

import "github.com/srlehn/iconresize/internal/consts"

// Error kinds, match them with errors.Is.
var (
	ErrSourceNotFound     = consts.ErrSourceNotFound
	ErrDecode             = consts.ErrDecode
	ErrEncode             = consts.ErrEncode
	ErrMissingCapability  = consts.ErrMissingCapability
	ErrResizerUnavailable = consts.ErrResizerUnavailable
	ErrCheck              = consts.ErrCheck
	ErrInvalidSize        = consts.ErrInvalidSize
)

// SourceCandidates returns the source file names in order of precedence.
func SourceCandidates() []string { return append([]string(nil), consts.SourceCandidates[:]...) }

// TargetSizes returns the generated icon side lengths in generation order.
func TargetSizes() []int { return append([]int(nil), consts.TargetSizes[:]...) }

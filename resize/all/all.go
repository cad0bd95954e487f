// Package all registers every resizer implementation.
package all

import (
	_ "github.com/srlehn/iconresize/resize/bild"
	_ "github.com/srlehn/iconresize/resize/gift"
	_ "github.com/srlehn/iconresize/resize/imaging"
	_ "github.com/srlehn/iconresize/resize/nfnt"
	_ "github.com/srlehn/iconresize/resize/rdefault"
	_ "github.com/srlehn/iconresize/resize/rez"
	_ "github.com/srlehn/iconresize/resize/xdraw"
)

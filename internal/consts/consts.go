package consts

import (
	"errors"
)

var (
	ErrNilReceiver        = errors.New(`nil receiver`)
	ErrNilParam           = errors.New(`nil parameter`)
	ErrNilImage           = errors.New(`nil image`)
	ErrSourceNotFound     = errors.New(`no source image found`)
	ErrDecode             = errors.New(`decode image`)
	ErrEncode             = errors.New(`encode image`)
	ErrMissingCapability  = errors.New(`missing capability`)
	ErrResizerUnavailable = errors.New(`resizer not registered`)
	ErrCheck              = errors.New(`icon check failed`)
	ErrUnsupportedFormat  = errors.New(`unsupported file format`)
	ErrInvalidSize        = errors.New(`invalid size`)
)

const (
	LibraryName = `iconresize`
	ModulePath  = `github.com/srlehn/iconresize`

	ResizerDefaultName = `default`

	// OutputNameFormat is formatted with the target side length.
	OutputNameFormat = `icon%d.png`
	OutputExt        = `png`
)

// SourceCandidates are checked in order, the first existing file wins.
var SourceCandidates = [...]string{
	`icon_source.png`,
	`icon.png`,
	`source_icon.png`,
	`icon128.png`,
}

// TargetSizes are generated in order.
var TargetSizes = [...]int{16, 48, 128}

// console messages
const (
	MsgSourceNotFound = `No source image found. Please save your icon as 'icon_source.png'`
	MsgUsingSource    = `Using source image: %s`
	MsgCreated        = `Created %s (%dx%d)`
	MsgSuccess        = `✅ Icons created successfully!`
	MsgReload         = `Reload the extension in chrome://extensions/ to see the new icons.`
)

package layoutplan

import "errors"

// Sentinel errors for library operations. The pipeline itself never fails:
// unclassifiable content, missing brand fields, and protection violations all
// resolve to documented fallbacks or recorded validation issues. These
// sentinels cover the input surfaces around the pipeline, chiefly brand
// profile validation at load time.
var (
	// Brand profile validation errors.
	ErrInvalidPersonality  = errors.New("invalid brand personality")
	ErrInvalidMotion       = errors.New("invalid brand motion setting")
	ErrInvalidLayoutStyle  = errors.New("invalid brand layout style")
	ErrInvalidDensity      = errors.New("invalid brand density")
	ErrInvalidContentWidth = errors.New("invalid brand content width")
	ErrInvalidHeroStyle    = errors.New("invalid brand hero style")
	ErrInvalidColorMode    = errors.New("invalid brand color mode")
	ErrUnknownComponent    = errors.New("unknown component in brand preferences")
)

package service

import "errors"

// ErrUnknownPreset is returned by [ConfigurationService.ApplyPreset] when
// the given name is not in the built-in catalog. The wrapped message lists
// the valid names.
var ErrUnknownPreset = errors.New("unknown preset")

// Package playback plays generated WAV files on the default audio device.
package playback

import "errors"

// ErrUnavailable is returned on builds without an audio backend.
var ErrUnavailable = errors.New("audio playback requires CGO on Linux")

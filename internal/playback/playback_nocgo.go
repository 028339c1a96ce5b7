//go:build !((linux && cgo) || windows || darwin)

package playback

// Play is unavailable without an audio backend.
func Play(path string) error {
	return ErrUnavailable
}

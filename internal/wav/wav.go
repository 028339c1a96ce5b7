// Package wav writes canonical PCM WAV files.
package wav

import (
	"encoding/binary"
)

// HeaderSize is the size of the canonical RIFF/WAVE header.
const HeaderSize = 44

// Format describes the PCM layout of a WAV file.
type Format struct {
	SampleRate    int // Hz
	Channels      int
	BitsPerSample int
}

// MonoFormat is 44.1kHz, 16-bit, single channel.
func MonoFormat() Format {
	return Format{
		SampleRate:    44100,
		Channels:      1,
		BitsPerSample: 16,
	}
}

// ByteRate is the number of data bytes per second.
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

// BlockAlign is the size of one frame (all channels) in bytes.
func (f Format) BlockAlign() int {
	return f.Channels * (f.BitsPerSample / 8)
}

// Header builds the 44-byte header for dataSize bytes of samples.
// This is a pure function: (format, data size) → header bytes.
func Header(f Format, dataSize uint32) []byte {
	header := make([]byte, HeaderSize)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize) // Total - 8 bytes for RIFF header
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // Subchunk1Size (16 for PCM)
	binary.LittleEndian.PutUint16(header[20:22], 1)  // AudioFormat (1 = PCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample))

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}

// WriteWAV renders a complete WAV file from 16-bit samples.
// This is a pure function: samples → complete WAV file bytes.
func WriteWAV(f Format, samples []int16) []byte {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}

	wav := make([]byte, 0, HeaderSize+len(data))
	wav = append(wav, Header(f, uint32(len(data)))...)
	return append(wav, data...)
}

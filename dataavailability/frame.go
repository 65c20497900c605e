// Package dataavailability defines the frame wire format batches are posted
// with and the backend abstraction the derivation pipeline reads them from.
package dataavailability

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

const (
	// frame header: commitment ++ frameNum(u16) ++ frameCount(u16) ++ len(u32)
	frameHeaderSize = common.HashLength + 2 + 2 + 4
	// trailing keccak over header and data
	frameChecksumSize = common.HashLength

	// MaxFrameDataSize bounds the data carried by a single frame.
	MaxFrameDataSize = 1024 * 1024
)

var (
	// ErrMalformedFrame indicates a frame that failed structural or checksum
	// validation.
	ErrMalformedFrame = errors.New("malformed frame")
)

// Frame is one fragment of a batch payload. A batch committed with frame
// count n is reassembled by concatenating the data of frames 0..n-1.
type Frame struct {
	Commitment  common.Hash
	FrameNumber uint16
	FrameCount  uint16
	Data        []byte
}

// Encode serializes the frame into its wire representation, a fixed header
// followed by the data and a keccak checksum over both.
func (f *Frame) Encode() []byte {
	buf := make([]byte, frameHeaderSize+len(f.Data)+frameChecksumSize)
	copy(buf, f.Commitment.Bytes())
	binary.BigEndian.PutUint16(buf[common.HashLength:], f.FrameNumber)
	binary.BigEndian.PutUint16(buf[common.HashLength+2:], f.FrameCount)
	binary.BigEndian.PutUint32(buf[common.HashLength+4:], uint32(len(f.Data)))
	copy(buf[frameHeaderSize:], f.Data)
	copy(buf[frameHeaderSize+len(f.Data):], checksum(buf[:frameHeaderSize+len(f.Data)]))
	return buf
}

// DecodeFrame parses and validates a wire frame.
func DecodeFrame(raw []byte) (*Frame, error) {
	if len(raw) < frameHeaderSize+frameChecksumSize {
		return nil, fmt.Errorf("%w: %d bytes is below the minimum frame size", ErrMalformedFrame, len(raw))
	}
	dataLen := binary.BigEndian.Uint32(raw[common.HashLength+4:])
	if dataLen > MaxFrameDataSize {
		return nil, fmt.Errorf("%w: declared data length %d exceeds limit", ErrMalformedFrame, dataLen)
	}
	if len(raw) != frameHeaderSize+int(dataLen)+frameChecksumSize {
		return nil, fmt.Errorf("%w: declared data length %d does not match frame size", ErrMalformedFrame, dataLen)
	}

	payloadEnd := frameHeaderSize + int(dataLen)
	if !bytes.Equal(checksum(raw[:payloadEnd]), raw[payloadEnd:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrMalformedFrame)
	}

	frame := &Frame{
		Commitment:  common.BytesToHash(raw[:common.HashLength]),
		FrameNumber: binary.BigEndian.Uint16(raw[common.HashLength:]),
		FrameCount:  binary.BigEndian.Uint16(raw[common.HashLength+2:]),
		Data:        append([]byte(nil), raw[frameHeaderSize:payloadEnd]...),
	}
	if frame.FrameCount == 0 || frame.FrameNumber >= frame.FrameCount {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrMalformedFrame, frame.FrameNumber, frame.FrameCount)
	}
	return frame, nil
}

// SplitIntoFrames cuts a batch payload into frames of at most frameSize data
// bytes each. Used by the submission side and by tests; the inverse is the
// plain concatenation the derivation pipeline performs.
func SplitIntoFrames(commitment common.Hash, payload []byte, frameSize int) []Frame {
	if frameSize <= 0 {
		frameSize = MaxFrameDataSize
	}
	count := (len(payload) + frameSize - 1) / frameSize
	if count == 0 {
		count = 1
	}

	frames := make([]Frame, 0, count)
	for i := 0; i < count; i++ {
		start := i * frameSize
		end := start + frameSize
		if end > len(payload) {
			end = len(payload)
		}
		frames = append(frames, Frame{
			Commitment:  commitment,
			FrameNumber: uint16(i),
			FrameCount:  uint16(count),
			Data:        append([]byte(nil), payload[start:end]...),
		})
	}
	return frames
}

func checksum(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

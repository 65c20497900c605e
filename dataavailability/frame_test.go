package dataavailability

import (
	"bytes"
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameEncodeDecodeRoundTrip(t *testing.T) {
	frame := Frame{
		Commitment:  common.HexToHash("0xc0ffee"),
		FrameNumber: 2,
		FrameCount:  5,
		Data:        []byte("frame payload"),
	}

	decoded, err := DecodeFrame(frame.Encode())
	require.NoError(t, err)
	assert.Equal(t, frame.Commitment, decoded.Commitment)
	assert.Equal(t, frame.FrameNumber, decoded.FrameNumber)
	assert.Equal(t, frame.FrameCount, decoded.FrameCount)
	assert.Equal(t, frame.Data, decoded.Data)
}

func TestFrameDecodeEmptyData(t *testing.T) {
	frame := Frame{Commitment: common.HexToHash("0x01"), FrameNumber: 0, FrameCount: 1}

	decoded, err := DecodeFrame(frame.Encode())
	require.NoError(t, err)
	assert.Empty(t, decoded.Data)
}

func TestDecodeFrameRejectsCorruption(t *testing.T) {
	frame := Frame{
		Commitment:  common.HexToHash("0xc0ffee"),
		FrameNumber: 0,
		FrameCount:  1,
		Data:        []byte("frame payload"),
	}
	valid := frame.Encode()

	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeFrame(valid[:frameHeaderSize])
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})

	t.Run("flipped data byte", func(t *testing.T) {
		raw := append([]byte(nil), valid...)
		raw[frameHeaderSize] ^= 0xff
		_, err := DecodeFrame(raw)
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})

	t.Run("flipped checksum byte", func(t *testing.T) {
		raw := append([]byte(nil), valid...)
		raw[len(raw)-1] ^= 0xff
		_, err := DecodeFrame(raw)
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})

	t.Run("length mismatch", func(t *testing.T) {
		raw := append([]byte(nil), valid...)
		raw = append(raw, 0x00)
		_, err := DecodeFrame(raw)
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})

	t.Run("frame number out of range", func(t *testing.T) {
		bad := Frame{Commitment: frame.Commitment, FrameNumber: 3, FrameCount: 3, Data: frame.Data}
		_, err := DecodeFrame(bad.Encode())
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})

	t.Run("zero frame count", func(t *testing.T) {
		bad := Frame{Commitment: frame.Commitment, FrameNumber: 0, FrameCount: 0, Data: frame.Data}
		_, err := DecodeFrame(bad.Encode())
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})
}

func TestSplitIntoFramesReassembles(t *testing.T) {
	commitment := common.HexToHash("0xabcd")
	payload := bytes.Repeat([]byte{0x01, 0x02, 0x03}, 100)

	frames := SplitIntoFrames(commitment, payload, 64)
	require.Len(t, frames, 5)

	var assembled []byte
	for i, frame := range frames {
		assert.Equal(t, commitment, frame.Commitment)
		assert.Equal(t, uint16(i), frame.FrameNumber)
		assert.Equal(t, uint16(len(frames)), frame.FrameCount)
		assembled = append(assembled, frame.Data...)
	}
	assert.Equal(t, payload, assembled)
}

func TestSplitIntoFramesEmptyPayload(t *testing.T) {
	frames := SplitIntoFrames(common.HexToHash("0x01"), nil, 64)
	require.Len(t, frames, 1)
	assert.Equal(t, uint16(1), frames[0].FrameCount)
	assert.Empty(t, frames[0].Data)
}

func TestMemBackendAvailabilityHeight(t *testing.T) {
	backend := NewMemBackend()
	commitment := common.HexToHash("0xabcd")
	frame := Frame{Commitment: commitment, FrameNumber: 0, FrameCount: 1, Data: []byte{0x01}}

	_, err := backend.GetFrame(context.Background(), commitment, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	backend.StoreFrame(frame, 5)
	_, err = backend.GetFrame(context.Background(), commitment, 0)
	assert.ErrorIs(t, err, ErrPending)

	backend.SetHeight(5)
	got, err := backend.GetFrame(context.Background(), commitment, 0)
	require.NoError(t, err)
	assert.Equal(t, frame.Data, got.Data)

	_, err = backend.GetFrame(context.Background(), commitment, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/virjilakrum/igloo/derivation"
	"github.com/virjilakrum/igloo/engine/executorclient"
	"github.com/virjilakrum/igloo/state"
)

type stateMock struct {
	mock.Mock
}

func (m *stateMock) AddAppliedPayload(ctx context.Context, payload *state.AppliedPayload, dbTx pgx.Tx) error {
	args := m.Called(ctx, payload, dbTx)
	return args.Error(0)
}

func (m *stateMock) GetLastAppliedPayload(ctx context.Context, dbTx pgx.Tx) (*state.AppliedPayload, error) {
	args := m.Called(ctx, dbTx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.AppliedPayload), args.Error(1)
}

func (m *stateMock) GetAppliedPayloadByContentHash(ctx context.Context, contentHash common.Hash, dbTx pgx.Tx) (*state.AppliedPayload, error) {
	args := m.Called(ctx, contentHash, dbTx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.AppliedPayload), args.Error(1)
}

func (m *stateMock) GetAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) ([]state.AppliedPayload, error) {
	args := m.Called(ctx, epochNumber, dbTx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]state.AppliedPayload), args.Error(1)
}

func (m *stateMock) DeleteAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) error {
	args := m.Called(ctx, epochNumber, dbTx)
	return args.Error(0)
}

type executorMock struct {
	mock.Mock
}

func (m *executorMock) ProcessPayload(ctx context.Context, req *executorclient.ProcessPayloadRequest) (*executorclient.ProcessPayloadResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*executorclient.ProcessPayloadResponse), args.Error(1)
}

func instantAttr(epochNumber uint64) *derivation.PayloadAttribute {
	epoch := derivation.Epoch{
		Hash:   common.BigToHash(common.Big1),
		Number: epochNumber,
	}
	return derivation.NewPayloadAttribute(epoch, nil, state.PayloadSourceInstant, nil)
}

func daAttr(epochNumber uint64) *derivation.PayloadAttribute {
	epoch := derivation.Epoch{
		Hash:   common.BigToHash(common.Big1),
		Number: epochNumber,
	}
	commitment := common.HexToHash("0xc1")
	return derivation.NewPayloadAttribute(epoch, nil, state.PayloadSourceDa, &commitment)
}

func TestSubmitPayloadRecordsNewPayload(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(nil, state.ErrNotFound).Once()
	st.On("AddAppliedPayload", mock.Anything, mock.MatchedBy(func(p *state.AppliedPayload) bool {
		return p.EpochNumber == 5 &&
			p.Source == state.PayloadSourceInstant &&
			p.ContentHash == attr.ContentHash() &&
			p.Commitment == nil
	}), nil).Return(nil).Once()

	require.NoError(t, e.SubmitPayload(context.Background(), attr))
	st.AssertExpectations(t)
}

func TestSubmitPayloadSkipsAlreadyApplied(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).
		Return(&state.AppliedPayload{ContentHash: attr.ContentHash()}, nil).Once()

	require.NoError(t, e.SubmitPayload(context.Background(), attr))
	st.AssertNotCalled(t, "AddAppliedPayload", mock.Anything, mock.Anything, mock.Anything)
	st.AssertExpectations(t)
}

func TestSubmitPayloadRejectsBackwardsInstantEpoch(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(&state.AppliedPayload{EpochNumber: 7}, nil).Once()

	err := e.SubmitPayload(context.Background(), attr)
	require.Error(t, err)
	assert.True(t, IsPermanent(err))

	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrorCodeInvalidOrdering, engErr.Code)
	st.AssertExpectations(t)
}

func TestSubmitPayloadRejectsInstantAfterDaInSameEpoch(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(&state.AppliedPayload{EpochNumber: 5}, nil).Once()
	st.On("GetAppliedPayloadsByEpoch", mock.Anything, uint64(5), nil).
		Return([]state.AppliedPayload{{EpochNumber: 5, EpochHash: common.BigToHash(common.Big1), Source: state.PayloadSourceDa}}, nil).Once()

	err := e.SubmitPayload(context.Background(), attr)
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
	st.AssertExpectations(t)
}

func TestSubmitPayloadDiscardsPayloadsOfReplacedEpoch(t *testing.T) {
	// A failed advance can leave applied payloads for a block whose cursor
	// entry was rolled back. If that block is then replaced by a reorg, the
	// rewind never sees it, so the stale records surface here: same epoch
	// number, different hash. They must be dropped, not treated as an
	// ordering violation.
	st := new(stateMock)
	e := NewStateEngine(st, nil)

	epoch := derivation.Epoch{Hash: common.HexToHash("0xbb06"), Number: 6}
	attr := derivation.NewPayloadAttribute(epoch, nil, state.PayloadSourceInstant, nil)
	orphan := state.AppliedPayload{
		EpochNumber: 6,
		EpochHash:   common.HexToHash("0xaa06"),
		Source:      state.PayloadSourceInstant,
	}

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(&orphan, nil).Once()
	st.On("GetAppliedPayloadsByEpoch", mock.Anything, uint64(6), nil).
		Return([]state.AppliedPayload{orphan}, nil).Once()
	st.On("DeleteAppliedPayloadsByEpoch", mock.Anything, uint64(6), nil).Return(nil).Once()
	st.On("AddAppliedPayload", mock.Anything, mock.MatchedBy(func(p *state.AppliedPayload) bool {
		return p.EpochNumber == 6 && p.EpochHash == epoch.Hash
	}), nil).Return(nil).Once()

	require.NoError(t, e.SubmitPayload(context.Background(), attr))
	st.AssertExpectations(t)
}

func TestSubmitPayloadAcceptsDaAfterInstant(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := daAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(&state.AppliedPayload{EpochNumber: 5, Source: state.PayloadSourceInstant}, nil).Once()
	st.On("AddAppliedPayload", mock.Anything, mock.MatchedBy(func(p *state.AppliedPayload) bool {
		return p.Source == state.PayloadSourceDa && p.Commitment != nil
	}), nil).Return(nil).Once()

	require.NoError(t, e.SubmitPayload(context.Background(), attr))
	st.AssertExpectations(t)
}

func TestSubmitPayloadDaTrailingEarlierEpochIsAccepted(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := daAttr(4)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(&state.AppliedPayload{EpochNumber: 6}, nil).Once()
	st.On("AddAppliedPayload", mock.Anything, mock.Anything, nil).Return(nil).Once()

	require.NoError(t, e.SubmitPayload(context.Background(), attr))
	st.AssertExpectations(t)
}

func TestSubmitPayloadRecordRaceIsIdempotent(t *testing.T) {
	st := new(stateMock)
	e := NewStateEngine(st, nil)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(nil, state.ErrNotFound).Once()
	st.On("AddAppliedPayload", mock.Anything, mock.Anything, nil).Return(state.ErrAlreadyExists).Once()

	require.NoError(t, e.SubmitPayload(context.Background(), attr))
	st.AssertExpectations(t)
}

func TestSubmitPayloadExecutorRejection(t *testing.T) {
	st := new(stateMock)
	exec := new(executorMock)
	e := NewStateEngine(st, exec)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(nil, state.ErrNotFound).Once()
	exec.On("ProcessPayload", mock.Anything, mock.MatchedBy(func(req *executorclient.ProcessPayloadRequest) bool {
		return req.EpochNumber == 5 && req.Source == string(state.PayloadSourceInstant)
	})).Return(&executorclient.ProcessPayloadResponse{Error: "invalid state transition"}, nil).Once()

	err := e.SubmitPayload(context.Background(), attr)
	require.Error(t, err)
	assert.True(t, IsPermanent(err))

	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrorCodeRejected, engErr.Code)
	st.AssertNotCalled(t, "AddAppliedPayload", mock.Anything, mock.Anything, mock.Anything)
	st.AssertExpectations(t)
	exec.AssertExpectations(t)
}

func TestSubmitPayloadExecutorUnreachableIsTransient(t *testing.T) {
	st := new(stateMock)
	exec := new(executorMock)
	e := NewStateEngine(st, exec)
	attr := instantAttr(5)

	st.On("GetAppliedPayloadByContentHash", mock.Anything, attr.ContentHash(), nil).Return(nil, state.ErrNotFound).Once()
	st.On("GetLastAppliedPayload", mock.Anything, nil).Return(nil, state.ErrNotFound).Once()
	exec.On("ProcessPayload", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	err := e.SubmitPayload(context.Background(), attr)
	require.Error(t, err)
	assert.False(t, IsPermanent(err))
	st.AssertExpectations(t)
	exec.AssertExpectations(t)
}

func TestLastAppliedEpoch(t *testing.T) {
	t.Run("nothing applied yet", func(t *testing.T) {
		st := new(stateMock)
		e := NewStateEngine(st, nil)

		st.On("GetLastAppliedPayload", mock.Anything, nil).Return(nil, state.ErrNotFound).Once()

		_, err := e.LastAppliedEpoch(context.Background())
		assert.ErrorIs(t, err, state.ErrStateNotSynchronized)
		st.AssertExpectations(t)
	})

	t.Run("maps the last payload", func(t *testing.T) {
		st := new(stateMock)
		e := NewStateEngine(st, nil)

		st.On("GetLastAppliedPayload", mock.Anything, nil).Return(&state.AppliedPayload{
			EpochNumber: 9,
			EpochHash:   common.HexToHash("0xa9"),
		}, nil).Once()

		epoch, err := e.LastAppliedEpoch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(9), epoch.Number)
		assert.Equal(t, common.HexToHash("0xa9"), epoch.Hash)
		st.AssertExpectations(t)
	})
}

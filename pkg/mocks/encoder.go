package mocks

import (
	"context"

	"github.com/user/tilelapse/pkg/ports"
)

// SequenceEncoder is a mock implementation of ports.SequenceEncoder.
type SequenceEncoder struct {
	EncodeFunc func(ctx context.Context, job ports.EncodeJob) error

	// Recorded calls for verification
	Jobs []ports.EncodeJob
}

func (m *SequenceEncoder) Encode(ctx context.Context, job ports.EncodeJob) error {
	m.Jobs = append(m.Jobs, job)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, job)
	}
	return nil
}

var _ ports.SequenceEncoder = (*SequenceEncoder)(nil)

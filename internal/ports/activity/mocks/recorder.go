package mocks

import (
	"context"

	"vax-tracker/internal/ports/activity"

	"github.com/stretchr/testify/mock"
)

type Recorder struct {
	mock.Mock
}

func (m *Recorder) Record(ctx context.Context, e activity.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

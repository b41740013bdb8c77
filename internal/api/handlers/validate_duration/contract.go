package validate_duration

import (
	"context"

	validateDuration "github.com/m04kA/FSM-SchedulingService/internal/usecase/validate_duration"
)

type ValidateDurationUseCase interface {
	Execute(ctx context.Context, req *validateDuration.Request) (*validateDuration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

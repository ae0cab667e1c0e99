package filesystem

import (
	"fmt"

	"github.com/GriffinCanCode/SandboxFS/internal/logging"
	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/GriffinCanCode/SandboxFS/internal/session"
	"github.com/GriffinCanCode/SandboxFS/internal/types"
)

// FilesystemOps provides shared helpers for the tool modules
type FilesystemOps struct {
	Sessions *session.Manager
	Default  *sandbox.FS
	Logger   *logging.Logger
}

// Sandbox selects the sandbox for an execution context: the session's
// instance when a sandbox ID is supplied, the default workspace otherwise
func (ops *FilesystemOps) Sandbox(sbCtx *types.Context) (*sandbox.FS, error) {
	if sbCtx != nil && sbCtx.SandboxID != nil && *sbCtx.SandboxID != "" {
		if ops.Sessions != nil {
			if fs, ok := ops.Sessions.Get(*sbCtx.SandboxID); ok {
				return fs, nil
			}
		}
		return nil, fmt.Errorf("unknown sandbox session: %s", *sbCtx.SandboxID)
	}
	if ops.Default == nil {
		return nil, fmt.Errorf("no sandbox available")
	}
	return ops.Default, nil
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FromError converts a sandbox failure into a structured result,
// preserving the failure kind as a machine-readable code
func FromError(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Error:   &msg,
		Data:    map[string]interface{}{"code": string(sandbox.KindOf(err))},
	}, nil
}

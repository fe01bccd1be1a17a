package opts

import (
	"github.com/remx-ml/remx/pkg/config"
	"github.com/remx-ml/remx/pkg/state"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *state.UserLogger
}

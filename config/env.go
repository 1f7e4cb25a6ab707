package config

import (
	"os"

	"github.com/xy-planning-network/signpost"
)

const (
	RoutesEnvVar = "SIGNPOST_ROUTES"
	ModeEnvVar   = "SIGNPOST_MODE"
	BaseEnvVar   = "SIGNPOST_BASE"
)

// FromEnv loads the route file named by SIGNPOST_ROUTES,
// or uses Default when it is unset.
// SIGNPOST_MODE and SIGNPOST_BASE override the file's mode and base.
func FromEnv() (File, error) {
	f := Default()
	if path := os.Getenv(RoutesEnvVar); path != "" {
		var err error
		if f, err = Load(path); err != nil {
			return File{}, err
		}
	}

	f.Mode = signpost.EnvVarOrString(ModeEnvVar, f.Mode)
	f.Base = signpost.EnvVarOrString(BaseEnvVar, f.Base)

	return f, nil
}

package indexurl

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	toolName       = "pip"
	configFileName = "pip.conf"
	globalConfig   = "/etc/pip.conf"

	envVirtualEnv    = "VIRTUAL_ENV"
	envConfigFile    = "PIP_CONFIG_FILE"
	envXDGConfigDirs = "XDG_CONFIG_DIRS"

	// legacyDevNull is the literal value older tooling compared against
	// instead of the platform's null device.
	legacyDevNull = "os.devnull"
)

// Candidates returns the files that might configure pip, most specific first.
// None of them is guaranteed to exist. The list is rebuilt on every call.
func (r *Resolver) Candidates() []string {
	paths := make([]string, 0, 6)

	if venv := getenv(r.env, envVirtualEnv); venv != "" {
		paths = append(paths, filepath.Join(venv, configFileName))
	}

	paths = append(paths, r.userConfigFile(), globalConfig)

	for _, dir := range strings.Split(getenv(r.env, envXDGConfigDirs), ",") {
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, toolName, configFileName))
	}

	if file := getenv(r.env, envConfigFile); file != "" && !isDevNull(file) {
		paths = append(paths, file)
	}

	return paths
}

// userConfigFile prefers the platform config directory, but only when it is
// already present; otherwise ~/.config/pip/pip.conf is used on every platform.
func (r *Resolver) userConfigFile() string {
	if dir := r.appDirs.UserConfigDir(toolName); dir != "" {
		if _, err := r.fs.Stat(dir); err == nil {
			return filepath.Join(dir, configFileName)
		}
	}
	return filepath.Join(homeDir(r.env), ".config", toolName, configFileName)
}

// disabled reports whether PIP_CONFIG_FILE points at the null device, which
// turns every configuration file off.
func (r *Resolver) disabled() bool {
	file, ok := r.env.LookupEnv(envConfigFile)
	return ok && isDevNull(file)
}

func isDevNull(path string) bool {
	return path == os.DevNull || path == legacyDevNull
}

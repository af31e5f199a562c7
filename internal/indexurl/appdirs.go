package indexurl

import "path/filepath"

// AppDirs reports the conventional per-user configuration directory for an
// application. The directory is not required to exist.
type AppDirs interface {
	UserConfigDir(app string) string
}

// XDGAppDirs follows the XDG base directory layout used on Linux and the BSDs:
// $XDG_CONFIG_HOME/<app>, or ~/.config/<app> when unset.
type XDGAppDirs struct {
	Env Env
}

// UserConfigDir implements AppDirs.
func (d XDGAppDirs) UserConfigDir(app string) string {
	if base := getenv(d.Env, "XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, app)
	}
	return filepath.Join(homeDir(d.Env), ".config", app)
}

// DarwinAppDirs resolves to ~/Library/Application Support/<app>.
type DarwinAppDirs struct {
	Env Env
}

// UserConfigDir implements AppDirs.
func (d DarwinAppDirs) UserConfigDir(app string) string {
	return filepath.Join(homeDir(d.Env), "Library", "Application Support", app)
}

// WindowsAppDirs resolves to %LOCALAPPDATA%\<app>\<app>; the application name
// doubles as the vendor directory.
type WindowsAppDirs struct {
	Env Env
}

// UserConfigDir implements AppDirs.
func (d WindowsAppDirs) UserConfigDir(app string) string {
	base := getenv(d.Env, "LOCALAPPDATA")
	if base == "" {
		base = filepath.Join(homeDir(d.Env), "AppData", "Local")
	}
	return filepath.Join(base, app, app)
}

// homeDir evaluates HOME-style variables through env on every call instead of
// using os.UserHomeDir, so injected environments are honoured. It returns "~"
// when nothing is set.
func homeDir(env Env) string {
	if home := getenv(env, "HOME"); home != "" {
		return filepath.Clean(home)
	}
	if profile := getenv(env, "USERPROFILE"); profile != "" {
		return filepath.Clean(profile)
	}
	drive := getenv(env, "HOMEDRIVE")
	path := getenv(env, "HOMEPATH")
	if drive != "" && path != "" {
		return filepath.Join(drive, path)
	}
	return "~"
}

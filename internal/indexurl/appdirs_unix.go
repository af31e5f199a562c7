//go:build !windows && !darwin

package indexurl

// PlatformAppDirs returns the AppDirs for the running platform.
func PlatformAppDirs(env Env) AppDirs {
	return XDGAppDirs{Env: env}
}

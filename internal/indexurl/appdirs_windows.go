//go:build windows

package indexurl

// PlatformAppDirs returns the AppDirs for the running platform.
func PlatformAppDirs(env Env) AppDirs {
	return WindowsAppDirs{Env: env}
}

package indexurl

import (
	"path/filepath"
	"testing"
)

func TestAppDirs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dirs AppDirs
		want string
	}{
		{
			name: "XDGConfigHome",
			dirs: XDGAppDirs{Env: MapEnv{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home2"}},
			want: filepath.Join("/xdg", "pip"),
		},
		{
			name: "XDGEmptyConfigHome",
			dirs: XDGAppDirs{Env: MapEnv{"XDG_CONFIG_HOME": "", "HOME": "/home2"}},
			want: filepath.Join("/home2", ".config", "pip"),
		},
		{
			name: "Darwin",
			dirs: DarwinAppDirs{Env: MapEnv{"HOME": "/Users/me"}},
			want: filepath.Join("/Users/me", "Library", "Application Support", "pip"),
		},
		{
			name: "WindowsLocalAppData",
			dirs: WindowsAppDirs{Env: MapEnv{"LOCALAPPDATA": "/appdata/local"}},
			want: filepath.Join("/appdata/local", "pip", "pip"),
		},
		{
			name: "WindowsProfileFallback",
			dirs: WindowsAppDirs{Env: MapEnv{"USERPROFILE": "/users/me"}},
			want: filepath.Join("/users/me", "AppData", "Local", "pip", "pip"),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.dirs.UserConfigDir("pip"); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestHomeDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  MapEnv
		want string
	}{
		{name: "Home", env: MapEnv{"HOME": "/home2/", "USERPROFILE": "/users/me"}, want: filepath.Clean("/home2")},
		{name: "UserProfile", env: MapEnv{"USERPROFILE": "/users/me"}, want: filepath.Clean("/users/me")},
		{name: "DriveAndPath", env: MapEnv{"HOMEDRIVE": "C:", "HOMEPATH": "/users/me"}, want: filepath.Join("C:", "/users/me")},
		{name: "HomeNotTrimmed", env: MapEnv{"HOME": " /home2"}, want: filepath.Clean(" /home2")},
		{name: "Nothing", env: MapEnv{"HOME": ""}, want: "~"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := homeDir(tc.env); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestEnvFunc(t *testing.T) {
	t.Parallel()

	env := EnvFunc(func(key string) (string, bool) {
		return key + "-value", key == "SET"
	})
	if v, ok := env.LookupEnv("SET"); !ok || v != "SET-value" {
		t.Fatalf("unexpected lookup result (%q, %v)", v, ok)
	}
	if getenv(env, "OTHER") != "OTHER-value" {
		t.Fatalf("expected getenv to pass the value through")
	}
}

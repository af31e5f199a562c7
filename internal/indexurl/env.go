package indexurl

import "os"

// Env looks up environment variables. The second return value reports
// whether the variable is set at all, which matters for PIP_CONFIG_FILE.
type Env interface {
	LookupEnv(key string) (string, bool)
}

// EnvFunc adapts a lookup function such as os.LookupEnv to Env.
type EnvFunc func(key string) (string, bool)

// LookupEnv calls f(key).
func (f EnvFunc) LookupEnv(key string) (string, bool) {
	return f(key)
}

// MapEnv is a fixed environment, mostly useful in tests.
type MapEnv map[string]string

// LookupEnv returns the mapped value.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// OSEnv returns the process environment. It is sampled on every lookup.
func OSEnv() Env {
	return EnvFunc(os.LookupEnv)
}

func getenv(env Env, key string) string {
	v, _ := env.LookupEnv(key)
	return v
}

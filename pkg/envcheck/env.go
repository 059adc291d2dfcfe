package envcheck

import "os"

// EnvGetter looks up environment variables.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvGetter serves variables from a fixed map.
type MapEnvGetter map[string]string

func (m MapEnvGetter) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Package config loads fakeapi's configuration.
//
// Configuration is read from a YAML file, filled with defaults and then
// overridden by FAKEAPI_* environment variables:
//
//	FAKEAPI_API_URL      api_url
//	FAKEAPI_LATENCY      latency (Go duration, e.g. "250ms")
//	FAKEAPI_TOKEN        token
//	FAKEAPI_STORAGE      storage.backend (memory, file, sqlite, redis, postgres)
//	FAKEAPI_DATA_DIR     storage.dir
//	FAKEAPI_DSN          storage.dsn
//	FAKEAPI_KEY_PREFIX   storage.key_prefix
//	FAKEAPI_LOG_LEVEL    log.level
//	FAKEAPI_LOG_FORMAT   log.format
//
// Values in the file may reference the environment as ${VAR} or
// ${VAR:-default}.
//
// Example fakeapi.yaml:
//
//	api_url: http://localhost:4000
//	latency: 500ms
//	storage:
//	  backend: sqlite
//	  dir: ./data
//	log:
//	  level: debug
//	  format: pretty
package config

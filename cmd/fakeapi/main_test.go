package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"fakeapi": func() { os.Exit(run()) },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("FAKEAPI_STORAGE", "file")
			env.Setenv("FAKEAPI_DATA_DIR", env.WorkDir+"/data")
			env.Setenv("FAKEAPI_LATENCY", "1ms")
			env.Setenv("FAKEAPI_LOG_LEVEL", "error")
			return nil
		},
	})
}

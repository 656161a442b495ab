package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the repo root when testing, so relative paths (logs dir, sqlite
	// file) resolve the same way they do for cmd/server. usage is
	//
	//   in some_test.go,
	//   import (
	//     _ "boxlab.xyz/box-telemetry-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

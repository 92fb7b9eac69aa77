package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests run from the project root so relative paths (logs/, .env, fixtures) resolve the same
	// way they do for cmd/server. usage, in some_test.go:
	//
	//   import (
	//     _ "liyu1981.xyz/trade-alerts/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains every substring.
func expectContains(substrs ...string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		for _, substr := range substrs {
			if !strings.Contains(stdout, substr) {
				testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
				testing.Fail()
			}
		}
	}
}

package touch_test

import (
	"path/filepath"
	"testing"

	"github.com/Ayman17/OS-Assignment-1/pkg/applets/touch"
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/testutil"
)

func TestTouch(t *testing.T) {
	tests := []testutil.CommandTestCase{
		{
			Name:      "create",
			Args:      []string{"new.txt"},
			WantEmpty: true,
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "new.txt"), "")
			},
		},
		{
			Name: "joined_name",
			Args: []string{"my", "notes.txt"},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileExists(t, filepath.Join(dir, "my notes.txt"))
			},
		},
		{
			Name:  "nested",
			Args:  []string{"sub/f"},
			Files: map[string]string{"sub/": ""},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileExists(t, filepath.Join(dir, "sub", "f"))
			},
		},
		{
			Name:     "already_exists",
			Args:     []string{"f.txt"},
			Files:    map[string]string{"f.txt": "keep me"},
			WantKind: core.AlreadyExists,
			WantErr:  "already exists",
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "f.txt"), "keep me")
			},
		},
		{
			Name:     "missing_parent",
			Args:     []string{"nope/f"},
			WantKind: core.PathNotFound,
		},
		{
			Name:     "parent_is_file",
			Args:     []string{"f.txt/g"},
			Files:    map[string]string{"f.txt": ""},
			WantKind: core.PathNotFound,
		},
		{
			Name:     "no_args",
			WantKind: core.ArgumentCount,
		},
	}

	testutil.RunCommandTests(t, touch.Run, tests)
}

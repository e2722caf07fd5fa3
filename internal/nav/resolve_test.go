package nav_test

import (
	"errors"
	"reflect"
	"testing"

	"fzf-nav/internal/nav"
	"fzf-nav/internal/testutil"
)

func newResolver(fsmgr *testutil.MockFilesystemManager) *nav.NavService {
	return nav.NewNavService(nil, fsmgr, nil, nav.NewNopLogger(), testutil.FixedClock(), "")
}

func TestNavService_ResolveCandidates(t *testing.T) {
	t.Run("deduplicates keeping first occurrence", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddDirectory("/a")
		fsmgr.AddDirectory("/b")
		fsmgr.AddDirectory("/c")

		got := newResolver(fsmgr).ResolveCandidates([]string{"/a", "/b", "/a", "/c"})
		want := []string{"/a", "/b", "/c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveCandidates() = %v, want %v", got, want)
		}
	})

	t.Run("different spellings of one path collapse", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddDirectory("/work/project")
		fsmgr.AddDirectory("/real/lib")
		fsmgr.AddSymlink("/work/lib", "/real/lib")

		got := newResolver(fsmgr).ResolveCandidates([]string{
			"project", "/work/lib", "/work/project/", "/real/lib",
		})
		want := []string{"/work/project", "/real/lib"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveCandidates() = %v, want %v", got, want)
		}
	})

	t.Run("missing absolute path is kept as-is", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()

		got := newResolver(fsmgr).ResolveCandidates([]string{"/mnt/share/gone"})
		want := []string{"/mnt/share/gone"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveCandidates() = %v, want %v", got, want)
		}
	})

	t.Run("missing relative path is joined under home", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()

		got := newResolver(fsmgr).ResolveCandidates([]string{"notes"})
		want := []string{"/home/user/notes"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveCandidates() = %v, want %v", got, want)
		}
	})

	t.Run("missing relative path is dropped without home", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.HomeErr = errors.New("no home")
		fsmgr.AddDirectory("/kept")

		got := newResolver(fsmgr).ResolveCandidates([]string{"notes", "/kept"})
		want := []string{"/kept"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveCandidates() = %v, want %v", got, want)
		}
	})

	t.Run("excluded paths are not offered", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddDirectory("/a")
		fsmgr.AddDirectory("/tmp/x")
		fsmgr.Exclude("/tmp/x")

		got := newResolver(fsmgr).ResolveCandidates([]string{"/tmp/x", "/a"})
		want := []string{"/a"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveCandidates() = %v, want %v", got, want)
		}
	})

	t.Run("empty input gives empty output", func(t *testing.T) {
		got := newResolver(testutil.NewMockFilesystemManager()).ResolveCandidates(nil)
		if len(got) != 0 {
			t.Errorf("ResolveCandidates(nil) = %v, want empty", got)
		}
	})
}

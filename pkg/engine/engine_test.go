// pkg/engine/engine_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Mock Renamer
// PURPOSE: Test substitution, ordering and halt-on-failure without touching disk

package engine_test

import (
	stderrors "errors"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/arthur-debert/rename-files/pkg/engine"
	"github.com/arthur-debert/rename-files/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRenamer is a mock implementation of filesystem.Renamer for testing
type MockRenamer struct {
	mock.Mock
}

func (m *MockRenamer) RenameNoReplace(src, dst string) error {
	args := m.Called(src, dst)
	return args.Error(0)
}

func newEngine(t *testing.T, match, replace string, r *MockRenamer) *engine.Engine {
	t.Helper()
	e, err := engine.New(match, replace, engine.WithRenamer(r))
	require.NoError(t, err)
	return e
}

func TestNewInvalidPattern(t *testing.T) {
	e, err := engine.New("(unclosed", "x")

	assert.Nil(t, e)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	assert.Equal(t, "(unclosed", errors.GetErrorDetails(err)["pattern"])
}

func TestAccessors(t *testing.T) {
	e := newEngine(t, `(\d+)`, "N$1", &MockRenamer{})

	assert.Equal(t, `(\d+)`, e.MatchPattern())
	assert.Equal(t, "N$1", e.Replacement())
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		match   string
		replace string
		input   string
		want    string
	}{
		{"literal", "foo", "bar", "foo.txt", "bar.txt"},
		{"numbered group", `(\d+)`, "N$1", "img42.png", "imgN42.png"},
		{"first match only", "a", "X", "banana", "bXnana"},
		{"no match", "zzz", "y", "file.txt", "file.txt"},
		{"whole name", ".*", "same.txt", "a.txt", "same.txt"},
		{"braced group", `(\w+)\.txt`, "${1}_old.txt", "notes.txt", "notes_old.txt"},
		{"named group", `(?P<stem>\w+)\.jpeg$`, "$stem.jpg", "cat.jpeg", "cat.jpg"},
		{"missing group expands empty", "(a)", "[$2]", "cat", "c[]t"},
		{"ambiguous group name", `(\d)`, "$1x", "v2", "v"},
		{"literal dollar", "price", "$$", "price.txt", "$.txt"},
		{"empty match inserts at start", "^", "new_", "file", "new_file"},
		{"swap groups", `^(\w+)-(\w+)`, "$2-$1", "alpha-beta.md", "beta-alpha.md"},
		{"ascii digit class", `(\d+)`, "N$1", "img٤٢.png", "img٤٢.png"},
		{"unicode digit class", `(\pN+)`, "N$1", "img٤٢.png", "imgN٤٢.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.match, tt.replace, &MockRenamer{})

			assert.Equal(t, tt.want, string(e.Substitute([]byte(tt.input))))
			assert.Equal(t, tt.want, e.Destination(tt.input))
		})
	}
}

func TestSubstitutePreservesInvalidUTF8(t *testing.T) {
	e := newEngine(t, "name", "file", &MockRenamer{})

	got := e.Destination("bad\xff\xfe-name")
	assert.Equal(t, "bad\xff\xfe-file", got)
}

func TestProcessRenamesInOrder(t *testing.T) {
	r := &MockRenamer{}
	var calls []string
	r.On("RenameNoReplace", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { calls = append(calls, args.String(0)) }).
		Return(nil)

	e := newEngine(t, "old", "new", r)
	result, err := e.Process([]string{"old1", "old2", "old3"})

	require.NoError(t, err)
	assert.Equal(t, []string{"old1", "old2", "old3"}, calls)
	assert.Equal(t, 3, result.Renamed())
	assert.Equal(t, engine.Entry{Source: "old2", Destination: "new2", Outcome: engine.OutcomeRenamed}, result.Entries[1])
	r.AssertExpectations(t)
}

func TestProcessSkipsUnchangedNames(t *testing.T) {
	r := &MockRenamer{}
	r.On("RenameNoReplace", "foo.txt", "bar.txt").Return(nil)

	e := newEngine(t, "foo", "bar", r)
	result, err := e.Process([]string{"keep.txt", "foo.txt"})

	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, engine.OutcomeUnchanged, result.Entries[0].Outcome)
	assert.Equal(t, "keep.txt", result.Entries[0].Destination)
	assert.Equal(t, 1, result.Renamed())
	r.AssertNotCalled(t, "RenameNoReplace", "keep.txt", mock.Anything)
	r.AssertExpectations(t)
}

func TestProcessReplacementEqualToMatch(t *testing.T) {
	r := &MockRenamer{}

	e := newEngine(t, "a", "a", r)
	result, err := e.Process([]string{"a.txt"})

	require.NoError(t, err)
	assert.Equal(t, engine.OutcomeUnchanged, result.Entries[0].Outcome)
	r.AssertNotCalled(t, "RenameNoReplace", mock.Anything, mock.Anything)
}

func TestProcessHaltsOnFirstFailure(t *testing.T) {
	collision := &os.LinkError{Op: "rename", Old: "B", New: "B.bak", Err: syscall.EEXIST}

	r := &MockRenamer{}
	r.On("RenameNoReplace", "A", "A.bak").Return(nil)
	r.On("RenameNoReplace", "B", "B.bak").Return(collision)

	e := newEngine(t, "$", ".bak", r)
	result, err := e.Process([]string{"A", "B", "C"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
	assert.True(t, stderrors.Is(err, fs.ErrExist))

	var failure *engine.Failure
	require.True(t, stderrors.As(err, &failure))
	assert.Equal(t, 1, failure.Index)
	assert.Equal(t, "B", failure.Source)
	assert.Equal(t, "B.bak", failure.Destination)
	assert.Equal(t, errors.ErrDestinationExists, failure.Code())

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "B", details["source"])
	assert.Equal(t, "B.bak", details["destination"])

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "A", result.Entries[0].Source)

	r.AssertNotCalled(t, "RenameNoReplace", "C", mock.Anything)
	r.AssertExpectations(t)
}

func TestProcessNoTargets(t *testing.T) {
	r := &MockRenamer{}
	e := newEngine(t, "a", "b", r)

	result, err := e.Process(nil)

	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	r.AssertNotCalled(t, "RenameNoReplace", mock.Anything, mock.Anything)
}

func TestFailureError(t *testing.T) {
	f := &engine.Failure{
		Source:       "b.txt",
		Destination:  "same.txt",
		MatchPattern: ".*",
		Replacement:  "same.txt",
		Err:          &os.LinkError{Op: "rename", Old: "b.txt", New: "same.txt", Err: syscall.EEXIST},
	}

	assert.Equal(t, "b.txt (.* → same.txt): "+syscall.EEXIST.Error(), f.Error())
	assert.Equal(t, syscall.EEXIST.Error(), f.Detail())
	assert.True(t, stderrors.Is(f, syscall.EEXIST))
}

func TestFailureErrorDisplaysInvalidUTF8(t *testing.T) {
	f := &engine.Failure{
		Source:       "x\xffy",
		MatchPattern: "x",
		Replacement:  "z",
		Err:          syscall.EACCES,
	}

	assert.Equal(t, "x�y (x → z): "+syscall.EACCES.Error(), f.Error())
	assert.Equal(t, errors.ErrPermission, f.Code())
}
